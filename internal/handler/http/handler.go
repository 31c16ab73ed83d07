// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io/fs"
	"net/http"

	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/service"
	"github.com/MKhiriev/webrtc-prebuilt/internal/utils"
)

type Handler struct {
	services *service.Services

	// static serves the dist root as is. It answers every non-HTML path and
	// every HTML page whose config injection failed.
	static   http.Handler
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, assets fs.FS, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	static := http.NotFoundHandler()
	if assets != nil {
		static = http.FileServer(http.FS(indexOnlyFS{assets}))
	}

	return &Handler{
		services: services,
		static:   static,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
