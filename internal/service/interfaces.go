// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/webrtc-prebuilt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PageService serves the pages of the voice UI with the page configuration
// injected and bootstraps them on the host side.
type PageService interface {
	// RenderPage returns the page at path with the page configuration
	// injected into its root element.
	RenderPage(ctx context.Context, path string) ([]byte, error)

	// Bootstrap loads the configuration of the page at path, derives the
	// mount properties and mounts the voice client onto the page root.
	Bootstrap(ctx context.Context, path string) (models.MountProps, error)
}

// AppInfoService reports the build of the running host.
type AppInfoService interface {
	// GetAppVersion returns the version, configured or built in.
	GetAppVersion(ctx context.Context) string

	// GetBuildInfo returns the version together with the build date and
	// commit injected at link time.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
