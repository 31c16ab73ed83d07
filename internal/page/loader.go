// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/validators"
	"github.com/MKhiriev/webrtc-prebuilt/models"
)

// Loader reads the page configuration from the root element of a document.
//
// The root element id and the attribute name are explicit settings so a
// Loader can read any document, not only the one the host serves.
type Loader struct {
	rootElementID   string
	configAttribute string

	validator validators.Validator
	logger    *logger.Logger
}

func NewLoader(cfg config.UI, validator validators.Validator, logger *logger.Logger) *Loader {
	return &Loader{
		rootElementID:   cfg.RootElementID,
		configAttribute: cfg.ConfigAttribute,
		validator:       validator,
		logger:          logger,
	}
}

// Load looks up the root element, reads its configuration attribute and
// parses it. It only reads doc, so repeated calls on an unchanged document
// return equal results.
func (l *Loader) Load(ctx context.Context, doc Document) models.ConfigResult {
	root, ok := doc.ElementByID(l.rootElementID)
	if !ok {
		l.logger.Warn().Str("root_id", l.rootElementID).Msg("root element not found")
		return models.ConfigResult{Outcome: models.ConfigRootMissing}
	}

	raw, ok := root.Attribute(l.configAttribute)
	if !ok || raw == "" {
		l.logger.Warn().Str("attribute", l.configAttribute).Msg("no config data found in root element")
		return models.ConfigResult{Outcome: models.ConfigAttributeMissing}
	}

	return l.Parse(ctx, raw)
}

// Parse turns the serialized configuration into a result. Anything that is
// not a JSON object is [models.ConfigMalformed]. Every JSON object is
// [models.ConfigLoaded] with Raw intact; a [models.PageConfigSchema] mismatch
// is logged and kept in Err.
func (l *Loader) Parse(ctx context.Context, raw string) models.ConfigResult {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		l.logger.Error().Err(err).Msg("failed to parse config")
		return models.ConfigResult{Outcome: models.ConfigMalformed, Err: err}
	}
	if obj == nil {
		l.logger.Error().Err(ErrConfigNotObject).Msg("failed to parse config")
		return models.ConfigResult{Outcome: models.ConfigMalformed, Err: ErrConfigNotObject}
	}

	pageCfg := &models.PageConfig{Raw: obj}
	// only an object overlays the default connection parameters
	if params, ok := obj[models.ConnectParamsKey].(map[string]any); ok {
		pageCfg.ConnectParams = models.ConnectParams(params)
	}

	schemaErr := l.checkSchema(ctx, raw)
	if schemaErr != nil {
		l.logger.Warn().Err(schemaErr).Msg("config does not match schema")
	}

	l.logger.Info().Any("config", obj).Msg("loaded config")
	return models.ConfigResult{Outcome: models.ConfigLoaded, Config: pageCfg, Err: schemaErr}
}

func (l *Loader) checkSchema(ctx context.Context, raw string) error {
	var schema models.PageConfigSchema
	if err := json.Unmarshal([]byte(raw), &schema); err != nil {
		return fmt.Errorf("%w: %w", validators.ErrInvalidPageConfig, err)
	}
	return l.validator.Validate(ctx, schema)
}
