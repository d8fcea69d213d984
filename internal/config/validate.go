package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validate checks configuration invariants and returns actionable errors.
// Absent default credentials are not an error: tools may supply them per call.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	var errs []error

	if cfg.Endpoint != "" {
		if _, err := url.ParseRequestURI(cfg.Endpoint); err != nil {
			errs = append(errs, fmt.Errorf("endpoint: invalid URL %q: %w", cfg.Endpoint, err))
		}
	}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("timeout: invalid duration %q: %w", cfg.Timeout, err))
		} else if d <= 0 {
			errs = append(errs, fmt.Errorf("timeout: must be > 0, got %q", cfg.Timeout))
		}
	}

	if (cfg.ResellerID == "") != (cfg.APIKey == "") {
		missing := "api_key"
		if cfg.ResellerID == "" {
			missing = "reseller_id"
		}
		errs = append(errs, fmt.Errorf("credentials: %s is set but %s is not; set both or neither", otherCred(missing), missing))
	}

	return errors.Join(errs...)
}

func otherCred(name string) string {
	if name == "reseller_id" {
		return "api_key"
	}
	return "reseller_id"
}
