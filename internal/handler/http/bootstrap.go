// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/service"
	"github.com/MKhiriev/webrtc-prebuilt/internal/utils"
)

const pageQueryParam = "page"

// getBootstrap responds with the mount properties the voice client receives
// on the page named by the "page" query parameter (the index page when it is
// omitted).
func (h *Handler) getBootstrap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pagePath := r.URL.Query().Get(pageQueryParam)
	if pagePath == "" {
		pagePath = "/"
	}
	if !service.IsHTMLPath(pagePath) {
		log.Warn().Str("page", pagePath).Msg("bootstrap requested for a non-HTML path")
		http.Error(w, ErrNotAPage.Error(), http.StatusBadRequest)
		return
	}

	props, err := h.services.PageService.Bootstrap(r.Context(), pagePath)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("page", pagePath).Int("status", status).Msg("error bootstrapping page")
		http.Error(w, responseMessage(err, status), status)
		return
	}

	if _, err = utils.WriteJSON(w, props, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing mount props")
	}
}
