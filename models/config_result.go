// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigOutcome names the way a configuration lookup ended.
type ConfigOutcome int

const (
	// ConfigLoaded means the page carried a JSON object. Err may still hold
	// a schema diagnostic for it.
	ConfigLoaded ConfigOutcome = iota
	// ConfigRootMissing means the document has no root element.
	ConfigRootMissing
	// ConfigAttributeMissing means the root element has no configuration
	// attribute, or the attribute is empty.
	ConfigAttributeMissing
	// ConfigMalformed means the attribute is not a JSON object.
	ConfigMalformed
)

var configOutcomeNames = map[ConfigOutcome]string{
	ConfigLoaded:           "loaded",
	ConfigRootMissing:      "root_missing",
	ConfigAttributeMissing: "attribute_missing",
	ConfigMalformed:        "malformed",
}

func (o ConfigOutcome) String() string {
	if name, ok := configOutcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// ConfigResult is the tagged result of loading a page configuration.
// Config is set only when Outcome is [ConfigLoaded]. Err carries the parse
// failure for [ConfigMalformed], or the [PageConfigSchema] mismatch of a
// loaded configuration, which does not discard it.
type ConfigResult struct {
	Outcome ConfigOutcome
	Config  *PageConfig
	Err     error
}

// Present reports whether a configuration was loaded.
func (r ConfigResult) Present() bool {
	return r.Outcome == ConfigLoaded && r.Config != nil
}
