// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	UI struct {
		DistDir         string   `json:"dist_dir"`
		RootElementID   string   `json:"root_element_id"`
		ConfigAttribute string   `json:"config_attribute"`
		PropsAttribute  string   `json:"props_attribute"`
		WebRTCURL       string   `json:"webrtc_url"`
		ConfigFilePath  string   `json:"config_file"`
		PassthroughKeys []string `json:"passthrough_keys"`

		// PageConfig may be given inline instead of through ConfigFilePath.
		PageConfig map[string]any `json:"page_config"`
	} `json:"ui,omitempty"`

	Probe struct {
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
		Page    string   `json:"page"`
	} `json:"probe,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		UI: UI{
			DistDir:         jsonCfg.UI.DistDir,
			RootElementID:   jsonCfg.UI.RootElementID,
			ConfigAttribute: jsonCfg.UI.ConfigAttribute,
			PropsAttribute:  jsonCfg.UI.PropsAttribute,
			WebRTCURL:       jsonCfg.UI.WebRTCURL,
			ConfigFilePath:  jsonCfg.UI.ConfigFilePath,
			PassthroughKeys: jsonCfg.UI.PassthroughKeys,
			PageConfig:      jsonCfg.UI.PageConfig,
		},
		Probe: Probe{
			BaseURL: jsonCfg.Probe.BaseURL,
			Timeout: time.Duration(jsonCfg.Probe.Timeout),
			Page:    jsonCfg.Probe.Page,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// parsePageConfig reads the JSON object injected into served pages.
// The top level must be an object.
func parsePageConfig(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading page config file: %w", err)
	}

	var pageCfg map[string]any
	if err := json.Unmarshal(data, &pageCfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPageConfig, err)
	}
	if pageCfg == nil {
		return nil, ErrInvalidPageConfig
	}

	return pageCfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
