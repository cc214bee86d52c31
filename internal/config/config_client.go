package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientConfig is the configuration view used by the sync client.
type ClientConfig struct {
	App     App
	Adapter Adapter
	Storage Storage
	Workers Workers
}

// StubConfig is the configuration view used by the stub backend.
type StubConfig struct {
	Address        string
	Mode           string
	RequestTimeout time.Duration
	// InstitutionalDomain is the only email domain allowed to register.
	InstitutionalDomain string
}

// GetStructuredConfig merges flags from args, environment variables, the
// optional JSON file and defaults, in that priority order.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// GetClientConfig builds and validates the client config view. A file
// driver without a DSN gets a database file next to the executable.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}
	if clientCfg.Storage.DSN == "" {
		clientCfg.Storage.DSN = defaultDSN(clientCfg.Storage.Driver)
	}

	return clientCfg, clientCfg.validate()
}

// GetStubConfig builds and validates the stub backend config view.
func GetStubConfig(args []string) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		Address:        cfg.Stub.Address,
		Mode:           cfg.Stub.Mode,
		RequestTimeout: cfg.Adapter.RequestTimeout,

		InstitutionalDomain: cfg.App.InstitutionalDomain,
	}

	return stubCfg, stubCfg.validate()
}

func defaultDSN(driver string) string {
	var name string
	switch driver {
	case DriverSQLite:
		name = "matrimony.db"
	case DriverBolt:
		name = "matrimony.bolt"
	default:
		return ""
	}

	execPath, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(execPath), name)
}
