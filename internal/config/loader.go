package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLanes loads the lane-crossing configuration.
// Search order: customPath -> ~/.lanecross/configs/lanes.yaml -> ./configs/lanes.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func LoadLanes(customPath string) (LanesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLanesConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseLanes(data)
		if err != nil {
			return DefaultLanesConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("lanes.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseLanes(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/lanes.yaml"); err == nil {
		if cfg, err := parseLanes(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseLanes(defaultLanesYAML)
	if err != nil {
		return DefaultLanesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseLanes decodes YAML on top of the defaults and validates the result.
func parseLanes(data []byte) (LanesConfig, error) {
	cfg := DefaultLanesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanecross", "configs", filename)
}
