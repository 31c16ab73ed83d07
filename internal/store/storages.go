// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
)

// Storages aggregates the storage dependencies of the host.
type Storages struct {
	DistStore DistStore
}

// NewStorages resolves the dist root and fails when no frontend build can
// be found.
func NewStorages(cfg config.UI, logger *logger.Logger) (*Storages, error) {
	distStore, err := NewDistStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{DistStore: distStore}, nil
}
