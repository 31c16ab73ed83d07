// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() Options {
	return Options{DefaultConnectParams: models.ConnectParams{models.WebRTCURLKey: "/api/offer"}}
}

// ── DeriveConnectParams ───────────────────────────────────────────────────────

func TestDeriveConnectParams_AbsentConfigEqualsDefaults(t *testing.T) {
	defaults := models.ConnectParams{models.WebRTCURLKey: "/api/offer"}

	got := DeriveConnectParams(defaults, nil)

	assert.Equal(t, models.ConnectParams{"webrtcUrl": "/api/offer"}, got)
}

func TestDeriveConnectParams_ConfigWithoutConnectParams(t *testing.T) {
	defaults := models.ConnectParams{models.WebRTCURLKey: "/api/offer"}
	pageCfg := &models.PageConfig{Raw: map[string]any{"foo": 1.0}}

	got := DeriveConnectParams(defaults, pageCfg)

	assert.Equal(t, models.ConnectParams{"webrtcUrl": "/api/offer"}, got)
}

func TestDeriveConnectParams_OverrideReplacesOnlyGivenKey(t *testing.T) {
	defaults := models.ConnectParams{
		models.WebRTCURLKey: "/api/offer",
		"timeoutMs":         5000.0,
	}
	pageCfg := &models.PageConfig{
		ConnectParams: models.ConnectParams{models.WebRTCURLKey: "X"},
	}

	got := DeriveConnectParams(defaults, pageCfg)

	assert.Equal(t, models.ConnectParams{"webrtcUrl": "X", "timeoutMs": 5000.0}, got)
}

func TestDeriveConnectParams_AddsUnknownKeys(t *testing.T) {
	defaults := models.ConnectParams{models.WebRTCURLKey: "/api/offer"}
	pageCfg := &models.PageConfig{
		ConnectParams: models.ConnectParams{"endpoint": "/custom"},
	}

	got := DeriveConnectParams(defaults, pageCfg)

	assert.Equal(t, models.ConnectParams{"webrtcUrl": "/api/offer", "endpoint": "/custom"}, got)
}

func TestDeriveConnectParams_NestedValuesReplacedWhole(t *testing.T) {
	defaults := models.ConnectParams{
		models.WebRTCURLKey: "/api/offer",
		"headers":           map[string]any{"a": "1", "b": "2"},
	}
	pageCfg := &models.PageConfig{
		ConnectParams: models.ConnectParams{"headers": map[string]any{"c": "3"}},
	}

	got := DeriveConnectParams(defaults, pageCfg)

	assert.Equal(t, map[string]any{"c": "3"}, got["headers"])
}

func TestDeriveConnectParams_DefaultsUntouched(t *testing.T) {
	defaults := models.ConnectParams{models.WebRTCURLKey: "/api/offer"}
	pageCfg := &models.PageConfig{
		ConnectParams: models.ConnectParams{models.WebRTCURLKey: "/custom"},
	}

	_ = DeriveConnectParams(defaults, pageCfg)

	assert.Equal(t, "/api/offer", defaults[models.WebRTCURLKey])
}

// ── BuildMountProps ───────────────────────────────────────────────────────────

func TestBuildMountProps_AbsentConfig(t *testing.T) {
	props := BuildMountProps(nil, defaultOptions(), logger.Nop())

	assert.Equal(t, map[string]any{
		"transportType": "smallwebrtc",
		"connectParams": map[string]any{"webrtcUrl": "/api/offer"},
	}, props.Flatten())
}

func TestBuildMountProps_PassThrough(t *testing.T) {
	pageCfg := &models.PageConfig{Raw: map[string]any{"foo": 1.0, "bar": 2.0}}

	props := BuildMountProps(pageCfg, defaultOptions(), logger.Nop())

	assert.Equal(t, map[string]any{
		"foo":           1.0,
		"bar":           2.0,
		"transportType": "smallwebrtc",
		"connectParams": map[string]any{"webrtcUrl": "/api/offer"},
	}, props.Flatten())
}

func TestBuildMountProps_ConnectParamsNotDuplicatedInExtra(t *testing.T) {
	params := map[string]any{"webrtcUrl": "/custom"}
	pageCfg := &models.PageConfig{
		Raw:           map[string]any{"connectParams": params},
		ConnectParams: models.ConnectParams(params),
	}

	props := BuildMountProps(pageCfg, defaultOptions(), logger.Nop())

	assert.NotContains(t, props.Extra, models.ConnectParamsKey)
	assert.Equal(t, models.ConnectParams{"webrtcUrl": "/custom"}, props.ConnectParams)
}

func TestBuildMountProps_PageTransportTypeWins(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	pageCfg := &models.PageConfig{Raw: map[string]any{"transportType": "daily", "foo": 1.0}}

	props := BuildMountProps(pageCfg, defaultOptions(), log)

	assert.Equal(t, "daily", props.TransportType)
	assert.Equal(t, map[string]any{
		"transportType": "daily",
		"connectParams": map[string]any{"webrtcUrl": "/api/offer"},
		"foo":           1.0,
	}, props.Flatten())
	assert.Contains(t, buf.String(), "page config overrides transport type")
}

func TestBuildMountProps_NonStringTransportTypeKept(t *testing.T) {
	pageCfg := &models.PageConfig{Raw: map[string]any{"transportType": 3.0}}

	props := BuildMountProps(pageCfg, defaultOptions(), logger.Nop())

	assert.Equal(t, 3.0, props.Flatten()[models.TransportTypeKey])
}

func TestBuildMountProps_ConnectParamsStayDerived(t *testing.T) {
	pageCfg := &models.PageConfig{Raw: map[string]any{"connectParams": "x", "foo": 1.0}}

	props := BuildMountProps(pageCfg, defaultOptions(), logger.Nop())

	assert.Equal(t, models.ConnectParams{"webrtcUrl": "/api/offer"}, props.ConnectParams)
	assert.Equal(t, map[string]any{"foo": 1.0}, props.Extra)
}

func TestBuildMountProps_AllowlistCanExcludeTransportType(t *testing.T) {
	opts := defaultOptions()
	opts.PassthroughKeys = []string{"title"}
	pageCfg := &models.PageConfig{Raw: map[string]any{"transportType": "daily", "title": "Bot"}}

	props := BuildMountProps(pageCfg, opts, logger.Nop())

	assert.Equal(t, models.SmallWebRTCTransport, props.TransportType)
}

func TestBuildMountProps_PassthroughAllowlist(t *testing.T) {
	opts := defaultOptions()
	opts.PassthroughKeys = []string{"title"}
	pageCfg := &models.PageConfig{Raw: map[string]any{"title": "Bot", "onConnect": "alert(1)"}}

	props := BuildMountProps(pageCfg, opts, logger.Nop())

	assert.Equal(t, map[string]any{"title": "Bot"}, props.Extra)
}

func TestBuildMountProps_AllowlistDoesNotFilterConnectParams(t *testing.T) {
	opts := defaultOptions()
	opts.PassthroughKeys = []string{"title"}
	params := map[string]any{"webrtcUrl": "/custom"}
	pageCfg := &models.PageConfig{
		Raw:           map[string]any{"connectParams": params},
		ConnectParams: models.ConnectParams(params),
	}

	props := BuildMountProps(pageCfg, opts, logger.Nop())

	assert.Equal(t, "/custom", props.ConnectParams[models.WebRTCURLKey])
}

// ── NewOptions ────────────────────────────────────────────────────────────────

func TestNewOptions(t *testing.T) {
	cfg := config.UI{WebRTCURL: "/bot/offer", PassthroughKeys: []string{"title"}}

	opts := NewOptions(cfg)

	require.Equal(t, models.ConnectParams{"webrtcUrl": "/bot/offer"}, opts.DefaultConnectParams)
	assert.Equal(t, []string{"title"}, opts.PassthroughKeys)

	cfg.PassthroughKeys[0] = "changed"
	assert.Equal(t, "title", opts.PassthroughKeys[0])
}
