package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in every config directory.
const ConfigFile = "iceslide.yaml"

// UserDirName is the per-user data directory under $HOME.
const UserDirName = ".iceslide"

// LoadIce loads the puzzle configuration.
// Search order: customPath -> ~/.iceslide/configs/iceslide.yaml -> ./configs/iceslide.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error.
// Broken files further down the search order are skipped.
func LoadIce(customPath string) (IceConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return IceConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseIce(data)
		if err != nil {
			return IceConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserDir("configs", ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseIce(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseIce(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseIce(defaultIceYAML)
	if err != nil {
		return DefaultIceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseIce(data []byte) (IceConfig, error) {
	cfg := DefaultIceConfig()
	cfg.Presets = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return IceConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return IceConfig{}, err
	}
	return cfg, nil
}

// UserDir joins elem under ~/.iceslide, or returns empty if home is unavailable.
func UserDir(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, UserDirName}, elem...)...)
}
