// Package config provides configuration loading for the xsdnorm command.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"xsdnorm/internal/ordermap"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "xsdnorm.yaml"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Key conversions applied before reordering.
const (
	KeysExternal = "external"
	KeysInternal = "internal"
	KeysKeep     = "keep"
)

// Config represents the complete xsdnorm configuration
type Config struct {
	// OrderMap is the path of the order-map artifact
	OrderMap string `yaml:"order_map"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// RootType is the schema type of the top-level records
	RootType string       `yaml:"root_type"`
	Output   OutputConfig `yaml:"output"`
}

// OutputConfig configures how normalized records are written
type OutputConfig struct {
	// Format is json or yaml
	Format string `yaml:"format"`
	// Keys is external, internal or keep
	Keys string `yaml:"keys"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OrderMap: ordermap.DefaultFile,
		LogLevel: "info",
		Output: OutputConfig{
			Format: FormatJSON,
			Keys:   KeysExternal,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.OrderMap == "" {
		return fmt.Errorf("order_map is required")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error: got %q", c.LogLevel)
	}

	switch c.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be json or yaml: got %q", c.Output.Format)
	}

	switch c.Output.Keys {
	case KeysExternal, KeysInternal, KeysKeep:
	default:
		return fmt.Errorf("output.keys must be external, internal or keep: got %q", c.Output.Keys)
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Load returns the configuration at path. An empty path looks for DefaultFile in
// the working directory and falls back to the defaults when it does not exist;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFromFile(path)
	}

	if _, err := os.Stat(DefaultFile); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}

		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	return LoadFromFile(DefaultFile)
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.OrderMap != "" {
		c.OrderMap = other.OrderMap
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.RootType != "" {
		c.RootType = other.RootType
	}

	// Output
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Keys != "" {
		c.Output.Keys = other.Output.Keys
	}
}
