// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client process lifecycle.
//
// It starts a session for the configured identity, runs the terminal view
// next to the background reconciler, and tears the session down on quit,
// logout or signal.
package client
