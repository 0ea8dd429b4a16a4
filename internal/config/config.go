package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration
type Config struct {
	Environments map[string]Environment `json:"environments" yaml:"environments"`
}

// Environment represents a named request environment: the base URL and the
// defaults merged into every request made against it.
type Environment struct {
	BaseURL string            `json:"baseUrl" yaml:"baseUrl"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Query   map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	Timeout string            `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// LoadConfig loads a configuration file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ParseConfig(data, path)
}

// ParseConfig parses configuration data. The format is determined by the
// file extension in path, defaulting to YAML.
func ParseConfig(data []byte, path string) (*Config, error) {
	var config Config

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML config: %w", err)
		}
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Environment returns the named environment from the configuration.
func (c *Config) Environment(name string) (*Environment, error) {
	env, ok := c.Environments[name]
	if !ok {
		return nil, fmt.Errorf("environment not found: %s", name)
	}
	return &env, nil
}

// ParseTimeout parses the environment's timeout, or returns the fallback
// when none is configured.
func (e *Environment) ParseTimeout(fallback time.Duration) (time.Duration, error) {
	if e.Timeout == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(e.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", e.Timeout, err)
	}
	return d, nil
}

// Validate checks every environment in the configuration.
func Validate(config *Config) error {
	for name, env := range config.Environments {
		if env.BaseURL == "" {
			return fmt.Errorf("environment %q: baseUrl is required", name)
		}
		if env.Timeout != "" {
			if _, err := time.ParseDuration(env.Timeout); err != nil {
				return fmt.Errorf("environment %q: invalid timeout %q: %w", name, env.Timeout, err)
			}
		}
	}
	return nil
}
