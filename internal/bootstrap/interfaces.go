// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"context"

	"github.com/MKhiriev/webrtc-prebuilt/internal/page"
	"github.com/MKhiriev/webrtc-prebuilt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bootstrap_mock.go -package=mock

// ConfigLoader reads the page configuration of a document. It reports every
// failure through the returned outcome instead of an error.
type ConfigLoader interface {
	Load(ctx context.Context, doc page.Document) models.ConfigResult
}
