// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

var supportedLocales = []string{"bn", "en"}

var stubModes = []string{"up", "down", "legacy"}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverBolt:
		if cfg.Storage.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.InitialSyncDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.InstitutionalDomain == "" || !slices.Contains(supportedLocales, cfg.App.Locale) {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.Address == "" || !slices.Contains(stubModes, cfg.Mode) {
		return ErrInvalidStubConfigs
	}

	return nil
}
