package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in persistence settings, used when no config file overrides them.
const (
	defaultOutputDir  = "results"
	defaultFilePrefix = "result"
)

// Config holds the YAML-backed settings of the persistence flow.
type Config struct {
	// OutputDir is the directory result files are written into.
	OutputDir string `yaml:"output_dir"`
	// FilePrefix starts every generated result file name.
	FilePrefix string `yaml:"file_prefix"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:  defaultOutputDir,
		FilePrefix: defaultFilePrefix,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// An empty path selects the defaults; a named but unreadable or invalid
// file is an error. Fields the file leaves empty keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	if cfg.FilePrefix == "" {
		cfg.FilePrefix = defaultFilePrefix
	}
	return cfg, nil
}
