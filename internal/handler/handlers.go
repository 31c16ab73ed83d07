// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/handler/http"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/service"
	"github.com/MKhiriev/webrtc-prebuilt/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. Static assets are served from
// the dist store the pages are read from.
func NewHandlers(services *service.Services, storages *store.Storages, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}
	if storages != nil && storages.DistStore != nil {
		handlers.HTTP = http.NewHandler(services, storages.DistStore.FS(), logger)
	} else {
		handlers.HTTP = http.NewHandler(services, nil, logger)
	}

	return handlers, nil
}
