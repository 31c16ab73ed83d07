// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/models"
)

// appInfoService reports what build of the host is running.
type appInfoService struct {
	build models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports build with its version replaced by cfg.Version
// when one is configured. It fails when neither source names a version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" || version == models.NotAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", version).
		Str("build_commit", build.BuildCommit()).
		Msg("app info resolved")

	return &appInfoService{
		build:  models.NewAppBuildInfo(version, build.BuildDate(), build.BuildCommit()),
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
