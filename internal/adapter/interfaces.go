// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to a running webrtc-prebuilt host over HTTP.
//
// [PageAdapter] fetches raw pages and the host's own bootstrap view of them.
// Non-2xx statuses are mapped to the sentinel errors in errors.go so callers
// can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/webrtc-prebuilt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PageAdapter fetches pages from a host.
type PageAdapter interface {
	// FetchPage returns the HTML the host serves at path, config injected.
	FetchPage(ctx context.Context, path string) ([]byte, error)

	// FetchBootstrap returns the mount properties the host derives for path
	// through GET /api/bootstrap.
	FetchBootstrap(ctx context.Context, path string) (models.MountProps, error)
}
