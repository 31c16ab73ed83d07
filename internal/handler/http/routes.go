// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID, withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/build", h.getBuildInfo)
		r.Get("/bootstrap", h.getBootstrap)
	})

	// everything else is the voice UI itself
	router.Get("/*", h.servePage)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
