// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "webrtc-prebuilt-probe"

// HTTPClient wraps resty.Client so adapters can add request helpers on top of
// the embedded client.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. A zero
// timeout leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
