// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
)

// distCandidates are the locations of the frontend build relative to a base
// directory: the packaged layout first, then the source checkout layout.
var distCandidates = []string{
	filepath.Join("client", "dist"),
	filepath.Join("..", "client", "dist"),
}

// distStore is the default implementation of [DistStore] on top of a local
// directory.
type distStore struct {
	dir    string
	fsys   fs.FS
	logger *logger.Logger
}

// NewDistStore resolves the dist root and opens it.
//
// An explicit cfg.DistDir must exist; it is never silently replaced by a
// candidate. Without it the candidates are tried relative to the directory of
// the running executable and then relative to the working directory.
func NewDistStore(cfg config.UI, logger *logger.Logger) (DistStore, error) {
	logger.Debug().Msg("creating dist store")

	dir, err := resolveDistDir(cfg.DistDir, baseDirs(), logger)
	if err != nil {
		logger.Err(err).Msg("static frontend build not found in any of the expected locations")
		return nil, err
	}

	logger.Info().Str("dir", dir).Msg("serving frontend build")
	return &distStore{
		dir:    dir,
		fsys:   os.DirFS(dir),
		logger: logger,
	}, nil
}

func baseDirs() []string {
	var bases []string
	if exe, err := os.Executable(); err == nil {
		bases = append(bases, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		bases = append(bases, wd)
	}
	return bases
}

// resolveDistDir returns the absolute path of the first existing directory
// among explicit (when set) or the candidates under each base.
func resolveDistDir(explicit string, bases []string, logger *logger.Logger) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrDistNotFound, err)
		}
		if !isDir(abs) {
			return "", fmt.Errorf("%w: %s is not a directory", ErrDistNotFound, abs)
		}
		return abs, nil
	}

	for _, base := range bases {
		for _, candidate := range distCandidates {
			dir, err := filepath.Abs(filepath.Join(base, candidate))
			if err != nil {
				continue
			}
			logger.Debug().Str("dir", dir).Msg("checking dist directory path")
			if isDir(dir) {
				return dir, nil
			}
		}
	}

	return "", ErrDistNotFound
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// ReadPage reads the file at name from the dist root. Leading slashes are
// ignored; paths that escape the root are rejected.
func (s *distStore) ReadPage(ctx context.Context, name string) ([]byte, error) {
	clean, err := cleanPagePath(name)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	b, err := fs.ReadFile(s.fsys, clean)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, clean)
	case err != nil:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && isDir(filepath.Join(s.dir, filepath.FromSlash(clean))) {
			return nil, fmt.Errorf("%w: %s is a directory", ErrPageNotFound, clean)
		}
		s.logger.Err(err).Str("page", clean).Msg("failed to read page")
		return nil, fmt.Errorf("%w: %w", ErrReadingPage, err)
	}

	return b, nil
}

func (s *distStore) FS() fs.FS {
	return s.fsys
}

func (s *distStore) Dir() string {
	return s.dir
}

// cleanPagePath turns a URL path into an [fs.FS] name.
func cleanPagePath(name string) (string, error) {
	if strings.ContainsRune(name, '\\') || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPagePath, name)
	}

	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPagePath, name)
		}
	}

	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" || !fs.ValidPath(clean) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPagePath, name)
	}
	return clean, nil
}
