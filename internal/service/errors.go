// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInjectingConfig is returned by [PageService.RenderPage] when the
	// page exists but the configuration cannot be written into it. The page
	// is then expected to be served unmodified.
	ErrInjectingConfig = errors.New("error injecting config into page")
)
