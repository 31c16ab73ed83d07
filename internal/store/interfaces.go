// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io/fs"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DistStore gives read access to the built voice UI (the client/dist
// directory produced by the frontend build).
type DistStore interface {
	// ReadPage returns the content of the file at name, a slash separated
	// path relative to the dist root.
	ReadPage(ctx context.Context, name string) ([]byte, error)

	// FS exposes the dist root for static file serving.
	FS() fs.FS

	// Dir is the absolute path of the resolved dist root.
	Dir() string
}
