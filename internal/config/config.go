// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config contains the lfld server configuration.
package config

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"time"
)

type HTTPConfig struct {
	Addr               string
	CORSAllowedOrigins []string      `mapstructure:"corsAllowedOrigins"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdownTimeout"`
}

// MetricsConfig defines configurations for serving prometheus metrics.
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

type LogConfig struct {
	// Format is the log format to use: "text" or "json"
	Format string
	// Level is the log level to use: "none", "debug", "info", "warn", "error", or "fatal"
	Level string
}

// ListConfig tunes the lock-free list held by the server.
type ListConfig struct {
	// MaxRetries bounds failed CAS rounds in pop and insert-after; 0 is unbounded
	MaxRetries int `mapstructure:"maxRetries"`
	// CreateOnStart installs a list before the server accepts requests
	CreateOnStart bool `mapstructure:"createOnStart"`
}

type Config struct {
	HTTP    HTTPConfig
	Metrics MetricsConfig
	Log     LogConfig
	List    ListConfig
}

// DefaultConfig returns the configuration used when no file, flag or
// environment variable overrides a value.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:               "0.0.0.0:8080",
			CORSAllowedOrigins: []string{"*"},
			ShutdownTimeout:    5 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Addr:    "0.0.0.0:2112",
		},
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		List: ListConfig{
			MaxRetries: 0,
		},
	}
}

// Verify reports every invalid setting in cfg.
func (cfg *Config) Verify() error {
	var errs []error

	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		errs = append(errs, fmt.Errorf("invalid 'http.addr' %q: %w", cfg.HTTP.Addr, err))
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("'http.shutdownTimeout' must be positive"))
	}
	if cfg.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(cfg.Metrics.Addr); err != nil {
			errs = append(errs, fmt.Errorf("invalid 'metrics.addr' %q: %w", cfg.Metrics.Addr, err))
		}
		if cfg.Metrics.Addr == cfg.HTTP.Addr {
			errs = append(errs, errors.New("'metrics.addr' and 'http.addr' must differ"))
		}
	}
	if !slices.Contains([]string{"text", "json"}, cfg.Log.Format) {
		errs = append(errs, fmt.Errorf("config 'log.format' must be one of ['text', 'json']"))
	}
	if !slices.Contains([]string{"none", "debug", "info", "warn", "error", "fatal"}, cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error', 'fatal']"))
	}
	if cfg.List.MaxRetries < 0 {
		errs = append(errs, errors.New("'list.maxRetries' must be >= 0"))
	}

	return errors.Join(errs...)
}
