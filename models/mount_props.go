// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
)

const (
	// TransportTypeKey is the property naming the transport the voice client uses.
	TransportTypeKey = "transportType"
	// SmallWebRTCTransport is the only transport the prebuilt UI is mounted with.
	SmallWebRTCTransport = "smallwebrtc"
)

// MountProps are the properties handed to the voice client component when it
// is mounted. They serialize to one flat JSON object: Extra first, then the
// connection parameters and the transport type on top of it. A transportType
// in Extra is a non-string page value and is kept as is.
type MountProps struct {
	TransportType string
	ConnectParams ConnectParams
	Extra         map[string]any
}

// Flatten returns the props as a single map, the way they reach the component.
func (p MountProps) Flatten() map[string]any {
	out := make(map[string]any, len(p.Extra)+2)
	maps.Copy(out, p.Extra)
	out[ConnectParamsKey] = map[string]any(p.ConnectParams)
	if _, ok := p.Extra[TransportTypeKey]; !ok {
		out[TransportTypeKey] = p.TransportType
	}
	return out
}

// MarshalJSON implements [json.Marshaler].
func (p MountProps) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Flatten())
}

// UnmarshalJSON implements [json.Unmarshaler]. Keys other than the transport
// type and the connection parameters land in Extra.
func (p *MountProps) UnmarshalJSON(b []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}

	props := MountProps{Extra: make(map[string]any)}
	for key, raw := range flat {
		switch key {
		case TransportTypeKey:
			if err := json.Unmarshal(raw, &props.TransportType); err == nil {
				continue
			}
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			props.Extra[key] = v
		case ConnectParamsKey:
			if err := json.Unmarshal(raw, &props.ConnectParams); err != nil {
				return err
			}
		default:
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			props.Extra[key] = v
		}
	}

	*p = props
	return nil
}
