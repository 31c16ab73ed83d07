// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap is the composition root of the voice UI page: it turns
// the page configuration into mount properties and mounts the voice client
// exactly once.
//
// Connection parameters start from the host defaults and are overlaid one
// level deep by the page configuration. The fixed transport type and the
// derived connection parameters always win over pass-through keys.
package bootstrap
