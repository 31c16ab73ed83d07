// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// ConnectParamsKey is the top-level configuration key that holds the
// connection parameters of the voice client.
const ConnectParamsKey = "connectParams"

// WebRTCURLKey is the connection parameter naming the endpoint the voice
// client posts its WebRTC offer to.
const WebRTCURLKey = "webrtcUrl"

// ConnectParams describes how the mounted voice client reaches its backend.
// Keys are opaque to the host except for the endpoint key.
type ConnectParams map[string]any

// Clone returns a shallow copy of p. A nil receiver yields an empty map.
func (p ConnectParams) Clone() ConnectParams {
	out := make(ConnectParams, len(p))
	maps.Copy(out, p)
	return out
}

// PageConfig is the configuration a page carries in its root element.
//
// Raw holds the parsed JSON object exactly as it was found on the page and is
// what gets spread into the mount properties. ConnectParams is the typed view
// of Raw[ConnectParamsKey]; it is nil when the page supplied none.
type PageConfig struct {
	Raw           map[string]any
	ConnectParams ConnectParams
}

// PageConfigSchema is the narrow schema the host expects of a page
// configuration. A mismatch is reported, never enforced. Unknown keys are
// allowed and are not described here.
type PageConfigSchema struct {
	ConnectParams *ConnectParamsSchema `json:"connectParams"`
}

// ConnectParamsSchema lists the connection parameters the host knows about.
type ConnectParamsSchema struct {
	WebRTCURL *string `json:"webrtcUrl" validate:"omitempty,min=1"`
}
