package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in every search location.
const FileName = "supaplex.yaml"

// LoadSupaplex loads Supaplex configuration.
// Search order: customPath -> ~/.supaplex/configs/supaplex.yaml -> ./configs/supaplex.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes.
func LoadSupaplex(customPath string) (SupaplexConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SupaplexConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SupaplexConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSupaplexYAML)
	if err != nil {
		return DefaultSupaplexConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hard-coded defaults.
func parse(data []byte) (SupaplexConfig, error) {
	cfg := DefaultSupaplexConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SupaplexConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".supaplex", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg SupaplexConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
