// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP host settings
	// (for example, a malformed address or a zero timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidUIConfigs indicates invalid page bootstrap settings
	// (for example, an empty root element id).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidProbeConfigs indicates invalid probe settings.
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
	// ErrInvalidPageConfig indicates the page configuration file is not a
	// JSON object.
	ErrInvalidPageConfig = errors.New("page config must be a JSON object")
)
