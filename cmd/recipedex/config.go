package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig holds settings loadable from a YAML config file. Values act as
// defaults; command-line flags override them.
type FileConfig struct {
	DB        string `yaml:"db"`
	Embedding struct {
		Host  string `yaml:"host"`
		Model string `yaml:"model"`
	} `yaml:"embedding"`
}

// loadFileConfig reads and parses a YAML config file.
func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
