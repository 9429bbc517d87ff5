// Package config loads tool configuration from TOML. Every field has a
// working default so a missing config file is not an error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/treescope/treescope/project"
)

// Config is the full configuration surface.
type Config struct {
	Scan   ScanConfig   `toml:"scan"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// ScanConfig tunes file discovery and the analysis worker pool.
type ScanConfig struct {
	// Jobs bounds the worker pool. Zero means one worker per CPU.
	Jobs int `toml:"jobs"`
	// MaxFileBytes drops larger files during discovery. Zero disables.
	MaxFileBytes int64 `toml:"max_file_bytes"`
	// IgnoreDirs replaces the built-in directory skip list when set.
	IgnoreDirs []string `toml:"ignore_dirs"`
}

// ServerConfig selects the MCP transport.
type ServerConfig struct {
	// Mode is "stdio" or "sse".
	Mode string `toml:"mode"`
	// Port is the listen port for sse mode.
	Port int `toml:"port"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is a logrus level name ("debug", "info", "warn", "error").
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			MaxFileBytes: 2 * 1024 * 1024,
		},
		Server: ServerConfig{
			Mode: "stdio",
			Port: 8435,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads TOML from path on top of the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Logger builds a logrus logger honoring the configured level. Diagnostics
// go to stderr so stdout stays reserved for results.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	return log
}

// ScanOptions converts the scan section into project options.
func (c *Config) ScanOptions(log *logrus.Logger) project.Options {
	return project.Options{
		Jobs:         c.Scan.Jobs,
		MaxFileBytes: c.Scan.MaxFileBytes,
		IgnoreDirs:   c.Scan.IgnoreDirs,
		Logger:       log,
	}
}
