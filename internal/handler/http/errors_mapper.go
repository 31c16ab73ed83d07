// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/webrtc-prebuilt/internal/app"
	"github.com/MKhiriev/webrtc-prebuilt/internal/page"
	"github.com/MKhiriev/webrtc-prebuilt/internal/store"
)

var errorStatusMap = map[error]int{
	page.ErrRootElementNotFound: http.StatusUnprocessableEntity,
	page.ErrParsingDocument:     http.StatusUnprocessableEntity,
	page.ErrEncodingProps:       http.StatusInternalServerError,

	store.ErrPageNotFound:    http.StatusNotFound,
	store.ErrInvalidPagePath: http.StatusBadRequest,
	store.ErrReadingPage:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// responseMessage is the body written for err. Server-side failures never
// expose their error text.
func responseMessage(err error, status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return app.MsgInternalServerError
	case errors.Is(err, store.ErrPageNotFound):
		return app.MsgPageNotFound
	default:
		return err.Error()
	}
}
