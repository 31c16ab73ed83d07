// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"maps"
	"slices"

	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
	"github.com/MKhiriev/webrtc-prebuilt/internal/logger"
	"github.com/MKhiriev/webrtc-prebuilt/models"
)

// Options controls how mount properties are derived.
type Options struct {
	// DefaultConnectParams is the mapping every page starts from.
	DefaultConnectParams models.ConnectParams

	// PassthroughKeys, when non-empty, is the only set of top-level page
	// configuration keys forwarded to the component.
	PassthroughKeys []string
}

// NewOptions derives [Options] from the UI settings.
func NewOptions(cfg config.UI) Options {
	return Options{
		DefaultConnectParams: models.ConnectParams{models.WebRTCURLKey: cfg.WebRTCURL},
		PassthroughKeys:      slices.Clone(cfg.PassthroughKeys),
	}
}

// DeriveConnectParams overlays the page connection parameters onto a copy of
// defaults. Keys present in the page replace defaults; nested values are
// replaced as a whole, never merged.
func DeriveConnectParams(defaults models.ConnectParams, pageCfg *models.PageConfig) models.ConnectParams {
	params := defaults.Clone()
	if pageCfg != nil {
		maps.Copy(params, pageCfg.ConnectParams)
	}
	return params
}

func (o Options) forwards(key string) bool {
	return len(o.PassthroughKeys) == 0 || slices.Contains(o.PassthroughKeys, key)
}

// BuildMountProps derives the mount properties from a page configuration.
// A nil configuration yields the default transport type and connection
// parameters only. Page keys are spread over the defaults, so a page
// transportType replaces the default one; connectParams is always the
// derived overlay.
func BuildMountProps(pageCfg *models.PageConfig, opts Options, log *logger.Logger) models.MountProps {
	props := models.MountProps{
		TransportType: models.SmallWebRTCTransport,
		ConnectParams: DeriveConnectParams(opts.DefaultConnectParams, pageCfg),
		Extra:         make(map[string]any),
	}
	if pageCfg == nil {
		return props
	}

	for key, value := range pageCfg.Raw {
		switch {
		case key == models.ConnectParamsKey:
			// folded into props.ConnectParams
		case !opts.forwards(key):
			log.Debug().Str("key", key).Msg("page config key not in passthrough list, key dropped")
		case key == models.TransportTypeKey:
			log.Info().Any("value", value).Msg("page config overrides transport type")
			if transport, ok := value.(string); ok {
				props.TransportType = transport
			} else {
				props.Extra[key] = value
			}
		default:
			props.Extra[key] = value
		}
	}

	return props
}
