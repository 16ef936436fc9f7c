// Package config loads outreg settings from an optional config file and
// OUTREG_ environment variables, and builds the logger.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the application configuration.
type Config struct {
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
}

// StoreConfig locates the register database.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	Format         string `mapstructure:"format"`
	RedactContacts bool   `mapstructure:"redact_contacts"`
}

// Load reads configuration. An empty path uses defaults and the environment
// only. OUTREG_STORE_PATH overrides store.path, and so on.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("outreg")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs a default
// for AutomaticEnv to see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", "outreg.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("export.format", "xlsx")
	v.SetDefault("export.redact_contacts", false)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("store path is required")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: want json or console", c.Log.Format)
	}
	switch c.Export.Format {
	case "json", "md", "xlsx", "pdf":
	default:
		return fmt.Errorf("invalid export format %q", c.Export.Format)
	}
	return nil
}

// NewLogger builds a logger from lc. verbose forces debug level. Logs go to
// stderr so command output on stdout stays machine-readable.
func NewLogger(lc LogConfig, verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if lc.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
