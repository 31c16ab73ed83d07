// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io/fs"
	"path"
)

const indexPage = "index.html"

// indexOnlyFS hides directories that have no index page, so the file server
// answers them with 404 instead of a listing.
type indexOnlyFS struct {
	fs.FS
}

func (f indexOnlyFS) Open(name string) (fs.File, error) {
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !info.IsDir() {
		return file, nil
	}

	if _, err = fs.Stat(f.FS, path.Join(name, indexPage)); err != nil {
		file.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return nil, err
	}

	return file, nil
}
