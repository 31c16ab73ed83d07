// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/MKhiriev/webrtc-prebuilt/internal/bootstrap"
	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/page"
	"github.com/MKhiriev/webrtc-prebuilt/internal/store"
	"github.com/MKhiriev/webrtc-prebuilt/internal/validators"
	"github.com/MKhiriev/webrtc-prebuilt/models"
)

type pageService struct {
	distStore  store.DistStore
	pageConfig map[string]any

	injector *page.Injector
	loader   *page.Loader
	opts     bootstrap.Options

	rootElementID  string
	propsAttribute string

	logger *logger.Logger
}

// NewPageService serves pages from distStore with cfg.PageConfig injected.
func NewPageService(distStore store.DistStore, cfg config.UI, logger *logger.Logger) PageService {
	return &pageService{
		distStore:      distStore,
		pageConfig:     maps.Clone(cfg.PageConfig),
		injector:       page.NewInjector(cfg),
		loader:         page.NewLoader(cfg, validators.NewPageConfigValidator(), logger),
		opts:           bootstrap.NewOptions(cfg),
		rootElementID:  cfg.RootElementID,
		propsAttribute: cfg.PropsAttribute,
		logger:         logger,
	}
}

func (s *pageService) RenderPage(ctx context.Context, path string) ([]byte, error) {
	name := PageName(path)

	raw, err := s.distStore.ReadPage(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.inject(name, raw)
}

// Bootstrap runs the composition root against the page exactly as it would
// be served. When the configuration cannot be injected the page is
// bootstrapped unmodified, the same way it falls back to static serving.
func (s *pageService) Bootstrap(ctx context.Context, path string) (models.MountProps, error) {
	name := PageName(path)

	raw, err := s.distStore.ReadPage(ctx, name)
	if err != nil {
		return models.MountProps{}, err
	}

	body, err := s.inject(name, raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("page", name).Msg("bootstrapping page without injected config")
		body = raw
	}

	doc, err := page.ParseDocumentBytes(body)
	if err != nil {
		return models.MountProps{}, err
	}

	composer := bootstrap.NewComposer(
		s.loader,
		page.NewAttributeMounter(s.propsAttribute),
		s.rootElementID,
		s.opts,
		s.logger,
	)

	return composer.Run(ctx, doc)
}

func (s *pageService) inject(name string, raw []byte) ([]byte, error) {
	out, err := s.injector.Inject(raw, s.pageConfig)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInjectingConfig, name, err)
	}
	return out, nil
}
