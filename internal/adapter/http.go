// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/internal/utils"
	"github.com/MKhiriev/webrtc-prebuilt/models"
)

const bootstrapPath = "/api/bootstrap"

type httpPageAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewPageAdapter returns an HTTP [PageAdapter] for the host at
// cfg.BaseURL. A base URL without a scheme is treated as http.
func NewPageAdapter(cfg config.Probe, logger *logger.Logger) (PageAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid probe base url: %w", err)
	}

	return &httpPageAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpPageAdapter) FetchPage(ctx context.Context, path string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		Get(pagePath(path))
	if err != nil {
		return nil, fmt.Errorf("fetch page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Str("path", path).Int("bytes", len(resp.Body())).Msg("page fetched")
	return resp.Body(), nil
}

func (h *httpPageAdapter) FetchBootstrap(ctx context.Context, path string) (models.MountProps, error) {
	var props models.MountProps

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("page", pagePath(path)).
		SetResult(&props).
		Get(bootstrapPath)
	if err != nil {
		return models.MountProps{}, fmt.Errorf("fetch bootstrap request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MountProps{}, err
	}

	return props, nil
}

// pagePath makes path absolute so it resolves against the base URL root.
func pagePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
