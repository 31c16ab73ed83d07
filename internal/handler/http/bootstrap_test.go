// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/webrtc-prebuilt/internal/app"
	"github.com/MKhiriev/webrtc-prebuilt/internal/bootstrap"
	"github.com/MKhiriev/webrtc-prebuilt/internal/page"
	"github.com/MKhiriev/webrtc-prebuilt/internal/store"
	"github.com/MKhiriev/webrtc-prebuilt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetBootstrap_ReturnsFlatProps(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.page.EXPECT().Bootstrap(gomock.Any(), "/index.html").Return(models.MountProps{
		TransportType: models.SmallWebRTCTransport,
		ConnectParams: models.ConnectParams{"webrtcUrl": "/custom"},
		Extra:         map[string]any{"title": "Voice bot"},
	}, nil)

	rec := serve(router, http.MethodGet, "/api/bootstrap?page=/index.html")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"transportType": "smallwebrtc",
		"connectParams": {"webrtcUrl": "/custom"},
		"title": "Voice bot"
	}`, rec.Body.String())
}

func TestGetBootstrap_DefaultsToIndex(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.page.EXPECT().Bootstrap(gomock.Any(), "/").Return(models.MountProps{
		TransportType: models.SmallWebRTCTransport,
		ConnectParams: models.ConnectParams{"webrtcUrl": "/api/offer"},
	}, nil)

	rec := serve(router, http.MethodGet, "/api/bootstrap")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"transportType":"smallwebrtc","connectParams":{"webrtcUrl":"/api/offer"}}`, rec.Body.String())
}

func TestGetBootstrap_NonHTMLPathRejected(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.page.EXPECT().Bootstrap(gomock.Any(), gomock.Any()).Times(0)

	rec := serve(router, http.MethodGet, "/api/bootstrap?page=/assets/index.js")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrNotAPage.Error())
}

func TestGetBootstrap_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string // defaults to the error text
	}{
		{
			name:       "mount failed, root missing",
			err:        fmt.Errorf("%w: %w", bootstrap.ErrMountFailed, page.ErrRootElementNotFound),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "page not found",
			err:        fmt.Errorf("%w: missing.html", store.ErrPageNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgPageNotFound,
		},
		{
			name:       "invalid page path",
			err:        store.ErrInvalidPagePath,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			mocks.page.EXPECT().Bootstrap(gomock.Any(), "/page.html").Return(models.MountProps{}, tt.err)

			rec := serve(router, http.MethodGet, "/api/bootstrap?page=/page.html")

			assert.Equal(t, tt.wantStatus, rec.Code)
			wantBody := tt.wantBody
			if wantBody == "" {
				wantBody = tt.err.Error()
			}
			assert.Equal(t, wantBody+"\n", rec.Body.String())
		})
	}
}

func TestStatusFromError_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("unknown")))
}

func TestResponseMessage(t *testing.T) {
	leak := errors.New("open /srv/dist/secret.html: permission denied")

	assert.Equal(t, app.MsgInternalServerError, responseMessage(leak, http.StatusInternalServerError))
	assert.Equal(t, app.MsgPageNotFound, responseMessage(store.ErrPageNotFound, http.StatusNotFound))
	assert.Equal(t, ErrNotAPage.Error(), responseMessage(ErrNotAPage, http.StatusBadRequest))
}
