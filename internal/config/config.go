// Package config captures the process configuration once at startup.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort is used when PORT is absent or not a valid TCP port.
	// PORT=0 is kept and binds an ephemeral port.
	DefaultPort = 3000
	// DefaultVersion is reported when VERSION is absent and no build-time version was set.
	DefaultVersion = "1.0.0"

	envPort    = "PORT"
	envVersion = "VERSION"
	envFile    = ".env"
)

// Config is the immutable runtime configuration.
type Config struct {
	Port    int
	Version string

	// PortInvalid records that PORT was set but rejected in favour of DefaultPort.
	PortInvalid bool
	// RawPort is the PORT value as found in the environment.
	RawPort string
}

// Addr returns the listen address on all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads configuration from the process environment. Values from a .env
// file in the working directory are applied first without overriding variables
// that are already set. A missing .env file is not an error.
func Load(defaultVersion string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return FromLookup(os.LookupEnv, defaultVersion), err
	}
	return FromLookup(os.LookupEnv, defaultVersion), nil
}

// FromLookup builds a Config from lookup, typically os.LookupEnv.
func FromLookup(lookup func(string) (string, bool), defaultVersion string) Config {
	if defaultVersion == "" {
		defaultVersion = DefaultVersion
	}
	cfg := Config{Port: DefaultPort, Version: defaultVersion}

	if raw, ok := lookup(envPort); ok && raw != "" {
		cfg.RawPort = raw
		if port, ok := parsePort(raw); ok {
			cfg.Port = port
		} else {
			cfg.PortInvalid = true
		}
	}
	if v, ok := lookup(envVersion); ok && v != "" {
		cfg.Version = v
	}
	return cfg
}

func parsePort(raw string) (int, bool) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 0 || port > 65535 {
		return 0, false
	}
	return port, true
}
