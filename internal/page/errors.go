// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import "errors"

var (
	// ErrRootElementNotFound is returned when a page has no element to
	// mount the voice client into or to inject the configuration into.
	ErrRootElementNotFound = errors.New("root element not found")

	// ErrConfigNotObject is reported when the configuration attribute holds
	// valid JSON whose top level is not an object.
	ErrConfigNotObject = errors.New("page config is not a JSON object")

	ErrParsingDocument   = errors.New("error parsing html document")
	ErrRenderingDocument = errors.New("error rendering html document")
	ErrEncodingConfig    = errors.New("error encoding page config")
	ErrEncodingProps     = errors.New("error encoding mount props")
)
