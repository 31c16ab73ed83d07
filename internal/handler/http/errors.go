// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/webrtc-prebuilt/internal/app"
)

// ErrNotAPage is returned by the bootstrap endpoint when the requested path
// is not answered with an HTML page.
var ErrNotAPage = errors.New(app.MsgNotAPage)
