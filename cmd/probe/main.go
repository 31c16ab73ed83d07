// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command probe fetches a page from a running host, bootstraps it locally the
// way the browser would and prints the resulting mount properties.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/webrtc-prebuilt/internal/adapter"
	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
)

func main() {
	log := logger.NewCLILogger("webrtc-prebuilt-probe")
	cfg, err := config.GetProbeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	pages, err := adapter.NewPageAdapter(cfg.Probe, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating page adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = run(ctx, pages, *cfg, os.Stdout, log); err != nil {
		log.Error().Err(err).Str("page", cfg.Probe.Page).Msg("probe failed")
		stop()
		os.Exit(1)
	}
}
