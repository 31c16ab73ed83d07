// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// prebuilt UI host and the probe CLI. It is populated by merging defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP host.
	Server Server `envPrefix:"SERVER_"`

	// UI holds the page bootstrap settings: where the built frontend lives,
	// which element the voice client mounts into, and what configuration is
	// injected into served pages.
	UI UI `envPrefix:"UI_"`

	// Probe holds settings for the probe CLI that inspects a running host.
	Probe Probe `envPrefix:"PROBE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP host listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// UI holds the page bootstrap settings.
type UI struct {
	// DistDir is the directory of the built frontend. When empty the host
	// searches the default production and development locations.
	// Env: UI_DIST_DIR
	DistDir string `env:"DIST_DIR"`

	// RootElementID is the id of the element the voice client mounts into.
	// Env: UI_ROOT_ELEMENT_ID
	RootElementID string `env:"ROOT_ELEMENT_ID" validate:"required"`

	// ConfigAttribute is the root element attribute carrying the page
	// configuration as JSON.
	// Env: UI_CONFIG_ATTRIBUTE
	ConfigAttribute string `env:"CONFIG_ATTRIBUTE" validate:"required"`

	// PropsAttribute is the root element attribute the mount properties are
	// written to when a page is bootstrapped on the host.
	// Env: UI_PROPS_ATTRIBUTE
	PropsAttribute string `env:"PROPS_ATTRIBUTE" validate:"required"`

	// WebRTCURL is the default endpoint the voice client sends its WebRTC
	// offer to when the page configuration does not override it.
	// Env: UI_WEBRTC_URL
	WebRTCURL string `env:"WEBRTC_URL" validate:"required,uri"`

	// ConfigFilePath points to a JSON object injected into every served page.
	// Env: UI_CONFIG_FILE
	ConfigFilePath string `env:"CONFIG_FILE"`

	// PassthroughKeys restricts which top-level page configuration keys are
	// forwarded to the mounted component. Empty forwards every key.
	// Env: UI_PASSTHROUGH_KEYS (comma separated)
	PassthroughKeys []string `env:"PASSTHROUGH_KEYS" envSeparator:","`

	// PageConfig is the configuration injected into served pages, read from
	// ConfigFilePath.
	PageConfig map[string]any
}

// Probe holds settings for the probe CLI.
type Probe struct {
	// BaseURL is the address of the running host, e.g. "http://localhost:7860".
	// Env: PROBE_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"required,url"`

	// Timeout bounds every probe request.
	// Env: PROBE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" validate:"gt=0"`

	// Page is the page path the probe inspects.
	// Env: PROBE_PAGE
	Page string `env:"PAGE" validate:"required"`
}

// GetStructuredConfig loads, merges, and validates the host configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// The page configuration file named by UI.ConfigFilePath is read last.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		withPageConfig().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetProbeConfig loads the same sources as [GetStructuredConfig] but
// validates only what the probe CLI needs.
func GetProbeConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateProbe()
}
