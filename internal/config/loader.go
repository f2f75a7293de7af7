package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAim loads the aim trainer configuration.
// Search order: customPath -> ~/.aimlab/configs/aim.yaml -> ./configs/aim.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadAim(customPath string) (AimConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AimConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAim(data)
		if err != nil {
			return AimConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("aim.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAim(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "aim.yaml")); err == nil {
		if cfg, err := parseAim(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseAim(defaultAimYAML)
	if err != nil {
		return DefaultAimConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseAim decodes YAML over the hardcoded defaults.
func parseAim(data []byte) (AimConfig, error) {
	cfg := DefaultAimConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AimConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aimlab", "configs", filename)
}
