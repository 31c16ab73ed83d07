// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress     = "localhost:7860"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultRootElementID   = "root"
	DefaultConfigAttribute = "data-config"
	DefaultPropsAttribute  = "data-props"
	DefaultWebRTCURL       = "/api/offer"

	DefaultProbeBaseURL = "http://localhost:7860"
	DefaultProbeTimeout = 15 * time.Second
	DefaultProbePage    = "/"
)

// defaults returns the built-in configuration every other source is merged onto.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		UI: UI{
			RootElementID:   DefaultRootElementID,
			ConfigAttribute: DefaultConfigAttribute,
			PropsAttribute:  DefaultPropsAttribute,
			WebRTCURL:       DefaultWebRTCURL,
		},
		Probe: Probe{
			BaseURL: DefaultProbeBaseURL,
			Timeout: DefaultProbeTimeout,
			Page:    DefaultProbePage,
		},
	}
}
