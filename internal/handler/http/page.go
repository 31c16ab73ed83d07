// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/service"
	"github.com/MKhiriev/webrtc-prebuilt/internal/store"
)

// servePage answers HTML paths with the page configuration injected. When the
// page cannot be rendered the request falls through to plain static serving,
// which also answers every non-HTML path.
func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	urlPath := r.URL.Path
	if !service.IsHTMLPath(urlPath) {
		h.static.ServeHTTP(w, r)
		return
	}

	body, err := h.services.PageService.RenderPage(r.Context(), urlPath)
	if err != nil {
		if !errors.Is(err, store.ErrPageNotFound) {
			logger.FromRequest(r).Warn().Err(err).Str("path", urlPath).Msg("failed to inject config into HTML, serving static file")
		}
		h.static.ServeHTTP(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
