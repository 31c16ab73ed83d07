// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the message strings the host writes into HTTP response
// bodies, so handlers and middleware use the same wording.
package app

const (
	// MsgInternalServerError replaces the error text of any 5xx response.
	MsgInternalServerError = "internal server error"

	// MsgNotAPage is returned when /api/bootstrap names a non-HTML path.
	MsgNotAPage = "page must be an HTML path"

	// MsgPageNotFound is returned when the requested page is not in the dist
	// directory.
	MsgPageNotFound = "page not found"
)
