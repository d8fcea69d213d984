package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/domainward/swmcp/internal/paths"
)

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads the config file at the default path, applies environment
// overrides, and fills in defaults. A missing config file is not an error.
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile())
}

// LoadFrom reads and parses a config file at the given path, then applies
// environment overrides and defaults.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		expandConfigEnvVars(&cfg)
	case os.IsNotExist(err):
		// fall through to env and defaults
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout == "" {
		cfg.Timeout = DefaultTimeout
	}
}

// ParseTimeout returns the outbound call timeout as a duration.
// Call Validate first; an invalid duration falls back to the default.
func (c *Config) ParseTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

func expandConfigEnvVars(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.ResellerID = expandEnvVars(cfg.ResellerID)
	cfg.APIKey = expandEnvVars(cfg.APIKey)
	cfg.Endpoint = expandEnvVars(cfg.Endpoint)
	cfg.Timeout = expandEnvVars(cfg.Timeout)
	cfg.HTTPAddr = expandEnvVars(cfg.HTTPAddr)
	for i := range cfg.Groups {
		cfg.Groups[i] = expandEnvVars(cfg.Groups[i])
	}
}

// expandEnvVars replaces ${VAR_NAME} with the value of the environment variable.
func expandEnvVars(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarRe.FindStringSubmatch(match)[1]
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match // leave unresolved vars as-is
	})
}
