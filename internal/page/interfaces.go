// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import "github.com/MKhiriev/webrtc-prebuilt/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/page_mock.go -package=mock

// Document is the part of a parsed page the bootstrap reads from.
type Document interface {
	// ElementByID returns the first element whose id attribute equals id.
	ElementByID(id string) (Element, bool)
}

// Element is a single node of a [Document].
type Element interface {
	// Attribute returns the value of the named attribute and whether the
	// attribute is present at all.
	Attribute(name string) (string, bool)

	// SetAttribute sets the named attribute, replacing any previous value.
	SetAttribute(name, value string)
}

// Mounter attaches the voice client, configured by props, to the root
// element of a page. A nil root must make Mount fail.
type Mounter interface {
	Mount(root Element, props models.MountProps) error
}
