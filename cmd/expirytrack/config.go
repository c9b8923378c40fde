// Config loading for the expirytrack CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBaseURL           = "base_url"
	cfgKeyRuntimeConfigURL  = "runtime_config_url"
	cfgKeyDataDir           = "data_dir"
	cfgKeyRequestTimeoutSec = "request_timeout_seconds"
	cfgKeyLoginTimeoutSec   = "login_timeout_seconds"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Expirytrack CLI configuration

# Backend base URL. Leave empty to resolve from runtime_config_url,
# or to work fully offline.
# base_url: https://expiry.example.com

# Optional JSON document supplying the base URL at runtime.
# runtime_config_url:

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Timeouts in seconds (0 = use defaults)
request_timeout_seconds: 5
login_timeout_seconds: 8
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. It creates the config directory and a default config.yaml on first
// run. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyRequestTimeoutSec, 5)
	v.SetDefault(cfgKeyLoginTimeoutSec, 8)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
