// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/webrtc-prebuilt/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldConnectParams = "ConnectParams"
	FieldWebRTCURL     = "ConnectParams.WebRTCURL"
)

var knownPageConfigFields = []string{FieldConnectParams, FieldWebRTCURL}

// PageConfigValidator checks [models.PageConfigSchema] values against the
// struct tags declared on them.
type PageConfigValidator struct {
	validate *validator.Validate
}

func NewPageConfigValidator() Validator {
	return &PageConfigValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *PageConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PageConfigSchema:
		return v.validatePageConfig(ctx, &value, fields...)
	case *models.PageConfigSchema:
		if value == nil {
			return fmt.Errorf("%w: nil page config", ErrUnsupportedType)
		}
		return v.validatePageConfig(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PageConfigValidator) validatePageConfig(ctx context.Context, schema *models.PageConfigSchema, fields ...string) error {
	for _, field := range fields {
		if !slices.Contains(knownPageConfigFields, field) {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, schema, fields...)
	} else {
		err = v.validate.StructCtx(ctx, schema)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return fmt.Errorf("%w: %s failed on '%s'", ErrInvalidPageConfig, first.Namespace(), first.Tag())
	}

	return fmt.Errorf("%w: %w", ErrInvalidPageConfig, err)
}
