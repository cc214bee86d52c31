// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging flags, environment variables, an optional JSON file
// and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the identity token, the
	// institutional domain and the UI locale.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage selects the local storage medium.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the reconciler schedule.
	Workers Workers `envPrefix:"WORKERS_"`

	// Stub holds the development backend settings.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// IDToken is the identity-provider ID token of the signed-in user. It is
	// sent as the bearer credential.
	// Env: APP_ID_TOKEN
	IDToken string `env:"ID_TOKEN"`

	// InstitutionalDomain is the email domain whose verified identities may
	// proceed provisionally while the backend is unreachable.
	// Env: APP_INSTITUTIONAL_DOMAIN
	InstitutionalDomain string `env:"INSTITUTIONAL_DOMAIN"`

	// Locale selects the message catalog ("bn" or "en").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// HTTPAddress is the backend base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage selects and locates the local storage medium.
type Storage struct {
	// Driver is one of "sqlite", "bolt" or "memory".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the database file path for the sqlite and bolt drivers.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Workers holds the reconciler schedule.
type Workers struct {
	// SyncInterval is the period of the automatic reconciliation pass.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// InitialSyncDelay is how long after session start the first pass runs.
	// Env: WORKERS_INITIAL_SYNC_DELAY
	InitialSyncDelay time.Duration `env:"INITIAL_SYNC_DELAY"`
}

// Stub holds settings of the development backend.
type Stub struct {
	// Address is the listen address in host:port form.
	// Env: STUB_ADDRESS
	Address string `env:"ADDRESS"`

	// Mode is one of "up", "down" or "legacy".
	// Env: STUB_MODE
	Mode string `env:"MODE"`
}

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			InstitutionalDomain: "seu.edu.bd",
			Locale:              "bn",
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			Driver: DriverSQLite,
		},
		Workers: Workers{
			SyncInterval:     30 * time.Second,
			InitialSyncDelay: 2 * time.Second,
		},
		Stub: Stub{
			Address: "localhost:8080",
			Mode:    "up",
		},
	}
}
