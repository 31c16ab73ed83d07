// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{UI: UI{DistDir: "/srv/dist"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "/srv/dist", cfg.UI.DistDir)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later source
// overrides the same field of an earlier one, while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "0.0.0.0:9000"},
		UI:     UI{PassthroughKeys: []string{"theme"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultWebRTCURL, cfg.UI.WebRTCURL)
	assert.Equal(t, []string{"theme"}, cfg.UI.PassthroughKeys)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDefaults())
	require.Len(t, b.configs, 1)

	cfg := b.configs[0]
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRootElementID, cfg.UI.RootElementID)
	assert.Equal(t, DefaultConfigAttribute, cfg.UI.ConfigAttribute)
	assert.Equal(t, DefaultPropsAttribute, cfg.UI.PropsAttribute)
	assert.Equal(t, DefaultWebRTCURL, cfg.UI.WebRTCURL)
	assert.Equal(t, DefaultProbeBaseURL, cfg.Probe.BaseURL)
}

// TestDefaults_AreValid verifies that the built-in defaults pass validation
// for both the host and the probe.
func TestDefaults_AreValid(t *testing.T) {
	assert.NoError(t, defaults().validate())
	assert.NoError(t, defaults().validateProbe())
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":   "env-version",
		"UI_WEBRTC_URL": "/env/offer",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "/env/offer", b.configs[0].UI.WebRTCURL)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a conversion failure is
// recorded on the builder and nothing is appended.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"PROBE_TIMEOUT": "soon"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Server.RequestTimeout = Duration(time.Minute)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, time.Minute, b.configs[1].Server.RequestTimeout)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── withPageConfig ────────────────────────────────────────────────────────────

func TestWithPageConfig_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withPageConfig())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithPageConfig_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"connectParams":{"webrtcUrl":"/custom"}}`), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{UI: UI{ConfigFilePath: path}})
	b.withPageConfig()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"connectParams": map[string]any{"webrtcUrl": "/custom"},
	}, cfg.UI.PageConfig)
}

func TestWithPageConfig_SetsError_WhenNotAnObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.json")
	require.NoError(t, os.WriteFile(path, []byte(`not valid json`), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{UI: UI{ConfigFilePath: path}})
	b.withPageConfig()

	assert.ErrorIs(t, b.err, ErrInvalidPageConfig)
}
