// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies every
// invariant the HTTP host relies on before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := configValidator.Struct(cfg.Server); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if err := configValidator.Struct(cfg.UI); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUIConfigs, err)
	}

	return nil
}

// validateProbe checks the settings the probe CLI relies on.
func (cfg *StructuredConfig) validateProbe() error {
	if err := configValidator.Struct(cfg.Probe); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProbeConfigs, err)
	}

	if err := configValidator.Struct(cfg.UI); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUIConfigs, err)
	}

	return nil
}
