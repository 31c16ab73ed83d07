// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "strings"

const indexPage = "index.html"

// IsHTMLPath reports whether a request for urlPath is answered with an HTML
// page: an explicit .html file or a directory index.
func IsHTMLPath(urlPath string) bool {
	return urlPath == "" || strings.HasSuffix(urlPath, "/") || strings.HasSuffix(urlPath, ".html")
}

// PageName maps a URL path to the file of the dist root that answers it.
// Directory paths resolve to their index.html.
func PageName(urlPath string) string {
	if urlPath == "" || strings.HasSuffix(urlPath, "/") {
		urlPath += indexPage
	}
	return strings.TrimPrefix(urlPath, "/")
}
