// Package logging provides config-driven categorized logging for edutool on top of zap.
//
// Commands log to stderr. The interactive keypad owns the terminal, so it only logs when
// debug_mode is on and a log file is configured; otherwise every logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"edutool/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config loading
	CategoryConfig Category = "config" // Config file writes
	CategoryCalc   Category = "calc"   // Expression evaluation
	CategoryUI     Category = "ui"     // Keypad TUI events
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	current config.LoggingConfig
	loggers = make(map[Category]*zap.Logger)
)

// Build constructs a logger from cfg without touching the package state.
func Build(cfg config.LoggingConfig, interactive bool) (*zap.Logger, error) {
	if interactive && (!cfg.DebugMode || cfg.File == "") {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = l
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	if cfg.Format != "json" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	zc.OutputPaths = nil
	zc.ErrorOutputPaths = nil
	if !interactive {
		zc.OutputPaths = append(zc.OutputPaths, "stderr")
		zc.ErrorOutputPaths = append(zc.ErrorOutputPaths, "stderr")
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		zc.OutputPaths = append(zc.OutputPaths, cfg.File)
		zc.ErrorOutputPaths = append(zc.ErrorOutputPaths, cfg.File)
	}

	return zc.Build()
}

// Initialize builds the root logger and makes it available through Get.
// Should be called once at startup.
func Initialize(cfg config.LoggingConfig, interactive bool) error {
	l, err := Build(cfg, interactive)
	if err != nil {
		return err
	}

	mu.Lock()
	root = l
	current = cfg
	loggers = make(map[Category]*zap.Logger)
	mu.Unlock()

	Get(CategoryBoot).Debug("logging initialized",
		zap.String("level", cfg.Level),
		zap.String("format", cfg.Format),
		zap.String("file", cfg.File),
		zap.Bool("interactive", interactive),
	)
	return nil
}

// rootLogger returns the uncategorized logger.
func rootLogger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Get returns (or creates) the logger for a category. Disabled categories get a no-op logger.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	l := zap.NewNop()
	if current.IsCategoryEnabled(string(category)) {
		l = root.Named(string(category))
	}
	loggers[category] = l
	return l
}

// WithSession returns a category logger tagged with an interactive session id.
func WithSession(category Category, sessionID string) *zap.Logger {
	return Get(category).With(zap.String("session", sessionID))
}

// Sync flushes buffered entries (call at shutdown).
func Sync() error {
	return rootLogger().Sync()
}

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("operation completed", zap.String("op", t.op), zap.Duration("elapsed", elapsed))
	return elapsed
}
