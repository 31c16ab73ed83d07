// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"key": "value"}, http.StatusOK)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteJSON_Nil(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]any{"ch": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}
