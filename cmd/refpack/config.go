package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI's optional on-disk defaults, loaded from a TOML
// file via --config. Flags always override whatever a config file sets.
type Config struct {
	Compression struct {
		Format   string `toml:"format"`
		Strategy string `toml:"strategy"`
	} `toml:"compression"`

	Logging struct {
		Verbose bool `toml:"verbose"`
	} `toml:"logging"`
}

// DefaultConfig returns a Config with the CLI's built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Compression.Format = "reference"
	cfg.Compression.Strategy = "fast"
	cfg.Logging.Verbose = false
	return cfg
}

// LoadConfig reads and merges a TOML config file over the defaults. A
// missing path is not an error; callers pass GetConfigPath's result to
// opt into on-disk defaults only when present.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetConfigPath returns the platform-specific default config file path.
func GetConfigPath() string {
	var configDir string
	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "refpack")
	default:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "refpack.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "refpack")
	}
	return filepath.Join(configDir, "config.toml")
}
