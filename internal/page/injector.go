// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/webrtc-prebuilt/internal/config"
)

// Injector writes the page configuration into the root element of served
// pages, where [Loader] later finds it.
type Injector struct {
	rootElementID   string
	configAttribute string
}

func NewInjector(cfg config.UI) *Injector {
	return &Injector{
		rootElementID:   cfg.RootElementID,
		configAttribute: cfg.ConfigAttribute,
	}
}

// Inject returns page with pageCfg serialized into the configuration
// attribute of its root element. An empty pageCfg returns page untouched.
func (i *Injector) Inject(page []byte, pageCfg map[string]any) ([]byte, error) {
	if len(pageCfg) == 0 {
		return page, nil
	}

	payload, err := json.Marshal(pageCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingConfig, err)
	}

	doc, err := ParseDocumentBytes(page)
	if err != nil {
		return nil, err
	}

	root, ok := doc.ElementByID(i.rootElementID)
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrRootElementNotFound, i.rootElementID)
	}
	root.SetAttribute(i.configAttribute, string(payload))

	return doc.Bytes()
}
