package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents a complete processing-run configuration. Everything in
// here belongs to the CLI layer; the engine itself has no configuration
// surface.
type Config struct {
	// Input is the CSV transaction file to process. "-" reads stdin.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`
	// Output is where the account report is written. Empty means stdout.
	Output string       `json:"output,omitempty" yaml:"output,omitempty"`
	Report ReportConfig `json:"report" yaml:"report"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// ReportConfig contains report formatting parameters.
type ReportConfig struct {
	// Precision is the number of decimal places for amount columns;
	// -1 emits the shortest representation that round-trips.
	Precision int `json:"precision" yaml:"precision"`
}

// LogConfig contains diagnostics parameters.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. Input may stay empty here;
// the run command accepts the input path as a positional argument instead.
func (c *Config) Validate() error {
	if c.Report.Precision < -1 || c.Report.Precision > 12 {
		return fmt.Errorf("report.precision must be between -1 and 12")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Precision: -1,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
