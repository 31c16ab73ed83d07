// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/webrtc-prebuilt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// GET /api/version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semver", version: "1.2.3"},
		{name: "build metadata", version: "v1.2.3-beta+build.42"},
		{name: "not available", version: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := serve(router, http.MethodGet, "/api/version")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// GET /api/build
// ─────────────────────────────────────────────

func TestGetBuildInfo(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().GetBuildInfo(gomock.Any()).
		Return(models.NewAppBuildInfo("1.2.3", "2026-10-01T12:00:00Z", "abc123"))

	rec := serve(router, http.MethodGet, "/api/build")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-10-01T12:00:00Z","commit":"abc123"}`, rec.Body.String())
}

func TestGetBuildInfo_MissingMetadata(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "", ""))

	rec := serve(router, http.MethodGet, "/api/build")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"N/A","commit":"N/A"}`, rec.Body.String())
}
