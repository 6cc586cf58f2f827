// SPDX-License-Identifier: MIT

// Package config loads graphz settings from defaults, an optional YAML file,
// an optional dotenv file and GRAPHZ_* environment variables, in that order.
package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kataras/golog"
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphz/log"
)

// Backends accepted by Config.LogBackend.
const (
	BackendZap   = "zap"
	BackendGolog = "golog"
	BackendNone  = "none"
)

// Environment variables read by Load.
const (
	EnvLogLevel      = "GRAPHZ_LOG_LEVEL"
	EnvLogBackend    = "GRAPHZ_LOG_BACKEND"
	EnvVerbose       = "GRAPHZ_VERBOSE"
	EnvMaxIterations = "GRAPHZ_MAX_ITERATIONS"
)

var (
	// ErrUnknownBackend indicates a LogBackend other than zap, golog or none.
	ErrUnknownBackend = errors.New("config: unknown log backend")

	// ErrBadMaxIterations indicates a negative MaxIterations.
	ErrBadMaxIterations = errors.New("config: max iterations must be non-negative")
)

// Config holds the resolved settings for the CLI.
type Config struct {
	LogLevel      string
	LogBackend    string
	Verbose       bool
	MaxIterations int
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		LogBackend: BackendGolog,
	}
}

// Load resolves the configuration. Both paths are optional; an empty path
// skips that source. Variables already present in the environment win over
// the dotenv file.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	fileCfg, err := loadFileConfig(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: load %s", path)
	}
	if err := applyFileConfig(cfg, fileCfg); err != nil {
		return nil, err
	}

	if envFile = strings.TrimSpace(envFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "config: env file %s", envFile)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLogBackend); ok {
		cfg.LogBackend = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvVerbose); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "config: invalid %s", EnvVerbose)
		}
		cfg.Verbose = b
	}
	if v, ok := os.LookupEnv(EnvMaxIterations); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "config: invalid %s", EnvMaxIterations)
		}
		cfg.MaxIterations = n
	}

	return nil
}

// Validate rejects unknown levels and backends and negative limits.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.WithMessage(err, "config")
	}
	switch c.LogBackend {
	case BackendZap, BackendGolog, BackendNone:
	default:
		return errors.Wrapf(ErrUnknownBackend, "%q", c.LogBackend)
	}
	if c.MaxIterations < 0 {
		return errors.Wrapf(ErrBadMaxIterations, "got %d", c.MaxIterations)
	}

	return nil
}

// NewLogger builds the logger selected by LogBackend at LogLevel.
// out is used by the golog backend; zap writes to stderr.
func (c *Config) NewLogger(out io.Writer) (log.Logger, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.WithMessage(err, "config")
	}

	switch c.LogBackend {
	case BackendZap:
		return log.NewZapDevelopment(level)
	case BackendGolog:
		g := golog.New()
		g.SetOutput(out)
		l := log.NewGologLogger(g)
		l.SetLevel(level)
		return l, nil
	case BackendNone:
		return log.NoOpLogger{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", c.LogBackend)
	}
}
