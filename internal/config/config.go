package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"edutool/internal/calculator"

	"gopkg.in/yaml.v3"
)

// Config holds all edutool configuration. It is loaded once at startup and passed
// to the shell explicitly; nothing reads settings from global state.
type Config struct {
	// Calculator widget
	Calculator CalculatorConfig `yaml:"calculator"`

	// Shell-wide settings (night mode)
	Shell ShellConfig `yaml:"shell"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CalculatorConfig configures the calculator widget.
type CalculatorConfig struct {
	DefaultMode string `yaml:"default_mode"` // basic, scientific, waec
	HistorySize int    `yaml:"history_size"`
}

// ShellConfig holds the suite settings that reach the calculator host.
type ShellConfig struct {
	NightMode bool `yaml:"night_mode"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			DefaultMode: string(calculator.ModeBasic),
			HistorySize: calculator.DefaultHistorySize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath is $HOME/.edutool/config.yaml, or a relative .edutool/config.yaml when
// the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".edutool", "config.yaml")
	}
	return filepath.Join(home, ".edutool", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if mode := os.Getenv("EDUTOOL_MODE"); mode != "" {
		c.Calculator.DefaultMode = mode
	}
	if night := os.Getenv("EDUTOOL_NIGHT_MODE"); night != "" {
		if v, err := strconv.ParseBool(night); err == nil {
			c.Shell.NightMode = v
		}
	}
	if level := os.Getenv("EDUTOOL_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("EDUTOOL_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
}

// Mode returns the configured starting mode, falling back to basic.
func (c *Config) Mode() calculator.Mode {
	m, err := calculator.ParseMode(c.Calculator.DefaultMode)
	if err != nil {
		return calculator.ModeBasic
	}
	return m
}

// ErrInvalid marks a configuration that fails validation.
var ErrInvalid = errors.New("invalid configuration")

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := calculator.ParseMode(c.Calculator.DefaultMode); err != nil {
		return fmt.Errorf("%w: calculator.default_mode: %v", ErrInvalid, err)
	}
	if c.Calculator.HistorySize < 1 {
		return fmt.Errorf("%w: calculator.history_size must be at least 1, got %d", ErrInvalid, c.Calculator.HistorySize)
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("%w: logging.level %q (valid: %v)", ErrInvalid, c.Logging.Level, ValidLevels)
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (valid: console, json)", ErrInvalid, c.Logging.Format)
	}

	return nil
}
