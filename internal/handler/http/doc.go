// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the prebuilt UI host.
//
// It serves the built voice UI: HTML pages carry the injected page
// configuration, every other path is a plain static file. The bootstrap
// endpoint exposes the mount properties a page resolves to. Request tracing,
// access logging and response compression are handled here before requests
// reach the service layer.
package http
