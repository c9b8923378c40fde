package types

import (
	"errors"
	"time"
)

// Default timeouts. Backend calls carry a fixed short deadline; the login
// watchdog at the interactive boundary is deliberately longer so the full
// fallback chain can run after a slow failure.
const (
	DefaultRequestTimeout = 5 * time.Second
	DefaultLoginTimeout   = 8 * time.Second
)

// Config validation errors.
var (
	ErrDataDirEmpty          = errors.New("data dir must not be empty")
	ErrRequestTimeoutInvalid = errors.New("request timeout must be positive")
	ErrLoginTimeoutInvalid   = errors.New("login timeout must be positive")
)

// Config holds the client configuration assembled from config.yaml, flags,
// and environment.
type Config struct {
	// DataDir is the directory holding the local cache database.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// BaseURL is the backend base URL. Empty means unset; the gateway may
	// then resolve it from RuntimeConfigURL, or issue same-origin requests.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// RuntimeConfigURL optionally points at a JSON document supplying the
	// base URL at runtime when none is configured. Fetched once per process;
	// absence or malformedness is non-fatal.
	RuntimeConfigURL string `json:"runtime_config_url" yaml:"runtime_config_url"`

	// RequestTimeout bounds every individual gateway call.
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`

	// LoginTimeout bounds an interactive login attempt end to end.
	LoginTimeout time.Duration `json:"login_timeout" yaml:"login_timeout"`
}

// WithDefaults returns a copy of the config with zero timeouts replaced by
// the defaults.
func (c Config) WithDefaults() Config {
	if c.RequestTimeout == 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.LoginTimeout == 0 {
		c.LoginTimeout = DefaultLoginTimeout
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.RequestTimeout <= 0 {
		return ErrRequestTimeoutInvalid
	}
	if c.LoginTimeout <= 0 {
		return ErrLoginTimeoutInvalid
	}
	return nil
}
