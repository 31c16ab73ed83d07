// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded page configurations against the narrow
// schema the host knows about. The loader reports a failed check as a
// diagnostic next to the configuration; it never rejects the page with it.
package validators

import "context"

// Validator checks a decoded value. Named fields restrict the check to those
// fields; an unknown name is an error.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
