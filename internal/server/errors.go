// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	errEmptyListenAddress = errors.New("stub listen address is empty")
	errNilHandler         = errors.New("stub handler is nil")
)
