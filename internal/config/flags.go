package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a backend address in format [host]:[port]
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-storage-driver local storage driver: sqlite, bolt or memory
//	-d local storage DSN (file path)
//	-sync-interval reconciler period (e.g., "30s")
//	-initial-sync-delay delay before the first pass (e.g., "2s")
//	-domain institutional email domain
//	-locale message catalog: bn or en
//	-token identity-provider ID token
//	-listen stub backend listen address in format [host]:[port]
//	-mode stub backend mode: up, down or legacy
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var backendAddress, listenAddress NetAddress
	var requestTimeout, syncInterval, initialSyncDelay time.Duration
	var storageDriver, dsn string
	var domain, locale, token string
	var mode string
	var jsonConfigPath string

	fs := flag.NewFlagSet("seu-matrimony", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&backendAddress, "a", "Backend address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&storageDriver, "storage-driver", "", "Local storage driver (sqlite, bolt, memory)")
	fs.StringVar(&dsn, "d", "", "Local storage DSN")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Reconciler period (e.g., 30s)")
	fs.DurationVar(&initialSyncDelay, "initial-sync-delay", 0, "Delay before the first reconciliation pass")
	fs.StringVar(&domain, "domain", "", "Institutional email domain")
	fs.StringVar(&locale, "locale", "", "Message locale (bn, en)")
	fs.StringVar(&token, "token", "", "Identity-provider ID token")
	fs.Var(&listenAddress, "listen", "Stub backend listen address host:port")
	fs.StringVar(&mode, "mode", "", "Stub backend mode (up, down, legacy)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			IDToken:             token,
			InstitutionalDomain: domain,
			Locale:              locale,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Driver: storageDriver,
			DSN:    dsn,
		},
		Workers: Workers{
			SyncInterval:     syncInterval,
			InitialSyncDelay: initialSyncDelay,
		},
		Stub: Stub{
			Address: listenAddress.String(),
			Mode:    mode,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
