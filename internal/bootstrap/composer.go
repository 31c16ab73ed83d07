// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"context"
	"fmt"

	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/page"
	"github.com/MKhiriev/webrtc-prebuilt/models"
)

// Composer loads the configuration of a page, derives the mount properties
// and performs the mount.
type Composer struct {
	loader        ConfigLoader
	mounter       page.Mounter
	rootElementID string
	opts          Options

	logger *logger.Logger
}

func NewComposer(loader ConfigLoader, mounter page.Mounter, rootElementID string, opts Options, logger *logger.Logger) *Composer {
	return &Composer{
		loader:        loader,
		mounter:       mounter,
		rootElementID: rootElementID,
		opts:          opts,
		logger:        logger,
	}
}

// Props derives the mount properties from a load result. Any outcome other
// than a loaded configuration is treated as an absent configuration.
func (c *Composer) Props(result models.ConfigResult) models.MountProps {
	var pageCfg *models.PageConfig
	if result.Present() {
		pageCfg = result.Config
	}
	return BuildMountProps(pageCfg, c.opts, c.logger)
}

// Run is the whole bootstrap of one document: load, derive, and exactly one
// call to the mounter. A document without a root element is still handed to
// the mounter, with a nil root; its failure is returned, not recovered.
func (c *Composer) Run(ctx context.Context, doc page.Document) (models.MountProps, error) {
	result := c.loader.Load(ctx, doc)
	props := c.Props(result)

	var root page.Element
	if el, ok := doc.ElementByID(c.rootElementID); ok {
		root = el
	}

	if err := c.mounter.Mount(root, props); err != nil {
		return props, fmt.Errorf("%w: %w", ErrMountFailed, err)
	}

	c.logger.Info().Str("outcome", result.Outcome.String()).Msg("voice client mounted")
	return props, nil
}
