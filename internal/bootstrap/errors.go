// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import "errors"

// ErrMountFailed wraps the error of the single mount call. It carries the
// mounter's own error, so errors.Is(err, page.ErrRootElementNotFound) holds
// when the page has no root element.
var ErrMountFailed = errors.New("error mounting voice client")
