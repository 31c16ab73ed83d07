// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/webrtc-prebuilt/internal/adapter"
	"github.com/MKhiriev/webrtc-prebuilt/internal/bootstrap"
	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/page"
	"github.com/MKhiriev/webrtc-prebuilt/internal/validators"
	"github.com/MKhiriev/webrtc-prebuilt/models"
)

// run bootstraps cfg.Probe.Page locally and writes the mount properties to
// out as indented JSON. The host's own view from /api/bootstrap is compared
// against it and a mismatch is logged; it never fails the probe.
func run(ctx context.Context, pages adapter.PageAdapter, cfg config.StructuredConfig, out io.Writer, log *logger.Logger) error {
	body, err := pages.FetchPage(ctx, cfg.Probe.Page)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}

	doc, err := page.ParseDocumentBytes(body)
	if err != nil {
		return err
	}

	composer := bootstrap.NewComposer(
		page.NewLoader(cfg.UI, validators.NewPageConfigValidator(), log),
		page.NewAttributeMounter(cfg.UI.PropsAttribute),
		cfg.UI.RootElementID,
		bootstrap.NewOptions(cfg.UI),
		log,
	)

	props, err := composer.Run(ctx, doc)
	if err != nil {
		return err
	}

	compareWithHost(ctx, pages, cfg.Probe.Page, props, log)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(props)
}

func compareWithHost(ctx context.Context, pages adapter.PageAdapter, path string, local models.MountProps, log *logger.Logger) {
	remote, err := pages.FetchBootstrap(ctx, path)
	if err != nil {
		log.Warn().Err(err).Msg("host bootstrap unavailable, skipping comparison")
		return
	}

	localJSON, err := json.Marshal(local)
	if err != nil {
		return
	}
	remoteJSON, err := json.Marshal(remote)
	if err != nil {
		return
	}

	if !bytes.Equal(localJSON, remoteJSON) {
		log.Warn().
			RawJSON("local", localJSON).
			RawJSON("host", remoteJSON).
			Msg("host and local mount props differ")
	}
}
