// Package config loads and persists the application configuration from
// ~/.huruf/config.yaml, with environment variables overriding file values
// and CLI flags overriding both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/quran"
)

// Defaults for unset configuration values.
const (
	DefaultSystem       = string(abjad.SystemMaghribi)
	DefaultOutputFormat = "table"
	DefaultLogLevel     = "info"
)

// ErrInvalidConfig indicates a configuration value failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// CalculationConfig holds calculation defaults.
type CalculationConfig struct {
	// System selects the default letter-value system: maghribi or mashriqi.
	System string `yaml:"system" json:"system"`

	// KeepSpaces disables space stripping during normalization.
	KeepSpaces bool `yaml:"keep_spaces,omitempty" json:"keep_spaces,omitempty"`

	// KeepDiacritics disables diacritic stripping during normalization.
	KeepDiacritics bool `yaml:"keep_diacritics,omitempty" json:"keep_diacritics,omitempty"`
}

// HistoryConfig holds history persistence settings.
type HistoryConfig struct {
	// File is the history file path. Empty selects ~/.huruf/history.json.
	File string `yaml:"file,omitempty" json:"file,omitempty"`

	// MaxEntries caps the history file. Zero selects the built-in default.
	MaxEntries int `yaml:"max_entries,omitempty" json:"max_entries,omitempty"`

	// Disabled turns off history recording entirely.
	Disabled bool `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// ProviderConfig holds verse-text provider settings.
type ProviderConfig struct {
	// BaseURL is the verse API endpoint. Empty selects the built-in default.
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	// TimeoutSeconds bounds a single fetch. Zero selects the built-in default.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty" json:"timeout_seconds,omitempty"`

	// Offline disables fetching; quran calculations then require pasted text.
	Offline bool `yaml:"offline,omitempty" json:"offline,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file,omitempty" json:"file,omitempty"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	// Format selects the default output format: table or json.
	Format string `yaml:"format" json:"format"`
}

// Config is the full application configuration.
type Config struct {
	Calculation CalculationConfig `yaml:"calculation" json:"calculation"`
	History     HistoryConfig     `yaml:"history" json:"history"`
	Provider    ProviderConfig    `yaml:"provider" json:"provider"`
	Logging     LoggingConfig     `yaml:"logging" json:"logging"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Calculation: CalculationConfig{System: DefaultSystem},
		Logging:     LoggingConfig{Level: DefaultLogLevel},
		Output:      OutputConfig{Format: DefaultOutputFormat},
	}
}

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path (missing file is not an error), overlaid by HURUF_*
// environment variables. Call Validate on the result before use.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, unmarshalErr)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays HURUF_* environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("HURUF_SYSTEM"); v != "" {
		c.Calculation.System = v
	}
	if v := os.Getenv("HURUF_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HURUF_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("HURUF_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("HURUF_HISTORY_FILE"); v != "" {
		c.History.File = v
	}
	if v := os.Getenv("HURUF_PROVIDER_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("HURUF_OFFLINE"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Provider.Offline = parsed
		}
	}
}

// Validate checks configuration values that have a closed domain.
func (c *Config) Validate() error {
	if !abjad.System(c.Calculation.System).Valid() {
		return fmt.Errorf("%w: unknown system %q (want maghribi or mashriqi)",
			ErrInvalidConfig, c.Calculation.System)
	}
	if c.Output.Format != "table" && c.Output.Format != "json" {
		return fmt.Errorf("%w: unknown output format %q (want table or json)",
			ErrInvalidConfig, c.Output.Format)
	}
	if c.History.MaxEntries < 0 {
		return fmt.Errorf("%w: history max_entries cannot be negative", ErrInvalidConfig)
	}
	if c.Provider.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: provider timeout_seconds cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// System returns the configured letter-value system.
func (c *Config) System() abjad.System {
	return abjad.System(c.Calculation.System)
}

// ProviderBaseURL returns the effective verse API endpoint.
func (c *Config) ProviderBaseURL() string {
	if c.Provider.BaseURL != "" {
		return c.Provider.BaseURL
	}
	return quran.DefaultBaseURL
}

// Save writes the configuration to the YAML file at path, creating the
// directory if needed. Empty path selects the default location.
func (c *Config) Save(path string) error {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o700); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}
	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config file %s: %w", path, writeErr)
	}
	return nil
}

// DefaultPath returns the default config file location, ~/.huruf/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Dir returns the huruf configuration directory.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(homeDir, ".huruf"), nil
}

// EnsureDir creates the configuration directory if it does not exist.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}
