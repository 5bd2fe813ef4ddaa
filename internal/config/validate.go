package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingStoreConfig is matched by every MissingConfigError.
var ErrMissingStoreConfig = errors.New("missing store configuration")

// MissingConfigError lists the required store settings that are unset.
type MissingConfigError struct {
	Missing []string // config keys, e.g. "store.url"
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingStoreConfig, strings.Join(e.Missing, ", "))
}

// Is makes errors.Is(err, ErrMissingStoreConfig) succeed.
func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingStoreConfig
}

// Validate checks the two required store values and the driver.
func (c *StoreConfig) Validate() error {
	var missing []string
	if c.URL == "" {
		missing = append(missing, "store.url")
	}
	if c.Key == "" {
		missing = append(missing, "store.key")
	}
	if len(missing) > 0 {
		return &MissingConfigError{Missing: missing}
	}

	switch c.Driver {
	case DriverREST, DriverPostgres:
	default:
		return fmt.Errorf("unknown store driver %q (want %s or %s)", c.Driver, DriverREST, DriverPostgres)
	}

	if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") && c.Driver == DriverREST {
		return fmt.Errorf("store url %q must start with http:// or https://", c.URL)
	}

	return nil
}
