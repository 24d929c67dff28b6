// Package models defines data structures for configuration.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// IngestConfig holds runtime configuration for ingest operations.
// Values come from CLI flags, optionally seeded from a YAML config file.
type IngestConfig struct {
	Files          []string
	WorkerCount    int
	ConvertBijoy   bool
	ExtractTimeout time.Duration
}

// FileConfig is the optional on-disk configuration. Flags override every
// field.
type FileConfig struct {
	InputDir       string `yaml:"input_dir"`
	OutputDir      string `yaml:"output_dir"`
	Workers        int    `yaml:"workers"`
	ConvertBijoy   bool   `yaml:"convert_bijoy"`
	MaxAge         string `yaml:"max_age"`
	ExtractTimeout string `yaml:"extract_timeout"`
	DBPath         string `yaml:"db_path"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
