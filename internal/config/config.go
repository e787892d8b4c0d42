// Package config provides configuration loading and validation for the screening service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither the config file nor flags set a value.
const (
	DefaultPort           = 8080
	DefaultMaxUploadBytes = 5 << 20 // 5 MiB resume uploads
)

// Config represents the service configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Port           int   `json:"port,omitempty"`             // HTTP listen port
	LogJSON        bool  `json:"log_json,omitempty"`         // JSON log encoding instead of console
	Debug          bool  `json:"debug,omitempty"`            // Debug-level logging
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"` // Resume upload size limit
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	return nil
}

// WithDefaults returns a copy with zero-valued fields filled from the package
// defaults. Bool fields are left alone: unset and false are indistinguishable,
// so CLI flags always win for those.
func (c *Config) WithDefaults() Config {
	result := *c
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return result
}
