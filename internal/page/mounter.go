// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/webrtc-prebuilt/models"
)

// AttributeMounter mounts the voice client by writing the flattened mount
// properties as JSON into one attribute of the root element.
type AttributeMounter struct {
	propsAttribute string
}

func NewAttributeMounter(propsAttribute string) *AttributeMounter {
	return &AttributeMounter{propsAttribute: propsAttribute}
}

func (m *AttributeMounter) Mount(root Element, props models.MountProps) error {
	if root == nil {
		return ErrRootElementNotFound
	}

	payload, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingProps, err)
	}

	root.SetAttribute(m.propsAttribute, string(payload))
	return nil
}
