package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file,
	// looked up in the user's home directory.
	userConfigFile = ".tdoconfig.yaml"

	// dataDirName is the default data directory name under $HOME.
	dataDirName = ".tdo"

	// DefaultNamespace is the key prefix used when none is configured.
	DefaultNamespace = "todoApp"
)

// Config represents user configuration from .tdoconfig.yaml.
// This file is user-managed and never written by tdo.
type Config struct {
	// DataDir is the directory holding the persisted key files.
	DataDir string `yaml:"data_dir"`

	// Namespace is the prefix applied to every persisted key.
	Namespace string `yaml:"namespace"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DataDir:   filepath.Join(home, dataDirName),
		Namespace: DefaultNamespace,
	}
}

// LoadConfig loads .tdoconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	// Start with defaults and merge the file over them
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	return cfg, nil
}
