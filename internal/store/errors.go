// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the dist store. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrDistNotFound is returned at startup when none of the candidate
	// directories holds a frontend build.
	ErrDistNotFound = errors.New("static frontend build not found, run `npm run build` in the client directory")

	// ErrPageNotFound is returned when the requested file does not exist in
	// the dist root or is a directory.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidPagePath is returned when the requested path is not a valid
	// slash separated path inside the dist root.
	ErrInvalidPagePath = errors.New("invalid page path")

	// ErrReadingPage is returned when an existing file cannot be read.
	ErrReadingPage = errors.New("error reading page")
)
