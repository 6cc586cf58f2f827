// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML layout. Pointer fields tell "absent" from "zero".
//
//	logging:
//	  level: debug
//	  backend: zap
//	graph:
//	  verbose: true
//	search:
//	  max_iterations: 1000
type FileConfig struct {
	Logging *LoggingFileConfig `yaml:"logging"`
	Graph   *GraphFileConfig   `yaml:"graph"`
	Search  *SearchFileConfig  `yaml:"search"`
}

type LoggingFileConfig struct {
	Level   *string `yaml:"level"`
	Backend *string `yaml:"backend"`
}

type GraphFileConfig struct {
	Verbose *bool `yaml:"verbose"`
}

type SearchFileConfig struct {
	MaxIterations *int `yaml:"max_iterations"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	expanded := expandPath(path)
	if expanded == "" {
		return nil, nil
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, err
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyFileConfig(cfg *Config, fileCfg *FileConfig) error {
	if cfg == nil || fileCfg == nil {
		return nil
	}
	if l := fileCfg.Logging; l != nil {
		if l.Level != nil {
			cfg.LogLevel = strings.TrimSpace(*l.Level)
		}
		if l.Backend != nil {
			cfg.LogBackend = strings.ToLower(strings.TrimSpace(*l.Backend))
		}
	}
	if g := fileCfg.Graph; g != nil && g.Verbose != nil {
		cfg.Verbose = *g.Verbose
	}
	if s := fileCfg.Search; s != nil && s.MaxIterations != nil {
		cfg.MaxIterations = *s.MaxIterations
	}
	return nil
}

// expandPath trims path and resolves a leading "~/".
func expandPath(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
