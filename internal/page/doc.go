// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package page implements the bootstrap contract between the host and the
// prebuilt voice UI: the page configuration carried by the root element of
// an HTML document.
//
// [Loader] reads and validates that configuration and never fails to its
// caller; every failure becomes a logged diagnostic and a named
// [models.ConfigOutcome]. [Injector] is the writing side used when pages are
// served, and [AttributeMounter] attaches the final mount properties to the
// root element.
package page
