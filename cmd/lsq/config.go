// Copyright 2026 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/lsq/pkg/logseq"
)

const (
	defaultConfigDir  = ".lsq"
	defaultConfigFile = "config.yaml"
	configVersion     = "1"

	defaultTimeoutSeconds = 30
)

// Config represents the .lsq/config.yaml configuration file.
type Config struct {
	Version string    `yaml:"version"`
	API     APIConfig `yaml:"api"`
}

// APIConfig contains Logseq HTTP API connection settings.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultConfig returns a config with sensible defaults for a local
// Logseq instance. The token has no default: it must come from the
// config file or LOGSEQ_API_TOKEN.
func DefaultConfig() *Config {
	return &Config{
		Version: configVersion,
		API: APIConfig{
			BaseURL:        logseq.DefaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
	}
}

// LoadConfig loads configuration from the specified path or finds it
// automatically.
//
// If configPath is empty, LSQ_CONFIG_PATH is consulted, then
// .lsq/config.yaml is searched in the current directory and parents.
// Environment variables are applied afterwards and override file values.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv("LSQ_CONFIG_PATH")
	}
	if configPath == "" {
		var err error
		configPath, err = findConfigFile()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // G304: Path comes from user config or discovery
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config format in %s: %w", configPath, err)
	}

	if cfg.Version != configVersion {
		return nil, fmt.Errorf("unsupported config version %q (expected %q), run 'lsq init --force' to regenerate", cfg.Version, configVersion)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	return &cfg, nil
}

// ConfigFromEnv builds a configuration purely from environment
// variables. Used when no config file exists but LOGSEQ_API_TOKEN is
// set, so `lsq --mcp` works without an init step.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

// SaveConfig writes the configuration to the specified path as YAML.
func SaveConfig(cfg *Config, configPath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}

	// 0600: the file may carry the API token.
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("cannot write config file %s: %w", configPath, err)
	}

	return nil
}

// ConfigPath returns the path to the config file in the given directory.
func ConfigPath(dir string) string {
	return filepath.Join(dir, defaultConfigDir, defaultConfigFile)
}

// findConfigFile searches for .lsq/config.yaml in current and parent directories.
func findConfigFile() (string, error) {
	if configPath := os.Getenv("LSQ_CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
		return "", fmt.Errorf("LSQ_CONFIG_PATH is set to %q but the file does not exist", configPath)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot access working directory: %w", err)
	}

	for {
		configPath := ConfigPath(dir)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no .lsq/config.yaml found in current directory or any parent directory; run 'lsq init' to create one")
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LOGSEQ_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("LOGSEQ_API_TOKEN"); v != "" {
		c.API.Token = v
	}
}

// applyDefaults fills in zero-valued fields after loading.
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = logseq.DefaultBaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultTimeoutSeconds
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.API.Token == "" {
		return fmt.Errorf("no API token configured; set api.token in .lsq/config.yaml or export LOGSEQ_API_TOKEN")
	}
	return nil
}

// NewGraphClient constructs a Logseq client from the configuration.
func (c *Config) NewGraphClient() *logseq.Client {
	client := logseq.NewClient(c.API.BaseURL, c.API.Token)
	client.HTTPClient = &http.Client{
		Timeout: time.Duration(c.API.TimeoutSeconds) * time.Second,
	}
	return client
}

// loadConfigOrEnv resolves configuration for commands: a config file if
// one is found, otherwise environment variables alone. The returned
// config is always validated.
func loadConfigOrEnv(configPath string) (*Config, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		envCfg := ConfigFromEnv()
		if envErr := envCfg.Validate(); envErr == nil {
			return envCfg, nil
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
