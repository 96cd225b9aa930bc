package config

import (
	"os"
	"path/filepath"
	"testing"

	"edutool/internal/calculator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the developer's shell does not leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"EDUTOOL_MODE", "EDUTOOL_NIGHT_MODE", "EDUTOOL_LOG_LEVEL", "EDUTOOL_LOG_FILE"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Calculator.DefaultMode != "basic" {
		t.Errorf("expected DefaultMode=basic, got %s", cfg.Calculator.DefaultMode)
	}
	if cfg.Calculator.HistorySize != 10 {
		t.Errorf("expected HistorySize=10, got %d", cfg.Calculator.HistorySize)
	}
	if cfg.Shell.NightMode {
		t.Error("expected night mode off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Calculator.DefaultMode = "waec"
	cfg.Calculator.HistorySize = 25
	cfg.Shell.NightMode = true

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, calculator.ModeWAEC, loaded.Mode())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calculator:\n  default_mode: scientific\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "scientific", cfg.Calculator.DefaultMode)
	assert.Equal(t, 10, cfg.Calculator.HistorySize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calculator: [oops"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("EDUTOOL_MODE", "scientific")
	t.Setenv("EDUTOOL_NIGHT_MODE", "true")
	t.Setenv("EDUTOOL_LOG_LEVEL", "debug")
	t.Setenv("EDUTOOL_LOG_FILE", "/tmp/edutool.log")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "scientific", cfg.Calculator.DefaultMode)
	assert.True(t, cfg.Shell.NightMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/edutool.log", cfg.Logging.File)
}

func TestConfig_EnvOverrides_IgnoresBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("EDUTOOL_NIGHT_MODE", "sometimes")

	cfg := DefaultConfig()
	cfg.Shell.NightMode = true
	cfg.applyEnvOverrides()
	assert.True(t, cfg.Shell.NightMode)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown mode", mutate: func(c *Config) { c.Calculator.DefaultMode = "graphing" }},
		{name: "zero history", mutate: func(c *Config) { c.Calculator.HistorySize = 0 }},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestConfig_ModeFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Calculator.DefaultMode = "nonsense"
	assert.Equal(t, calculator.ModeBasic, cfg.Mode())
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	c := LoggingConfig{}
	assert.True(t, c.IsCategoryEnabled("calc"))

	c.Categories = map[string]bool{"calc": false, "ui": true}
	assert.False(t, c.IsCategoryEnabled("calc"))
	assert.True(t, c.IsCategoryEnabled("ui"))
	assert.True(t, c.IsCategoryEnabled("boot"))
}
