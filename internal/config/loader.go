package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKlondike loads Klondike configuration.
// Search order: customPath -> ~/.patience/configs/klondike.yaml -> ./configs/klondike.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it
// changes. A custom path that cannot be read, parsed or validated is an error;
// the other locations are skipped when unusable.
func LoadKlondike(customPath string) (KlondikeConfig, error) {
	if customPath != "" {
		cfg, err := readKlondike(customPath)
		if err != nil {
			return DefaultKlondikeConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("klondike.yaml"); userCfgPath != "" {
		if cfg, err := readKlondike(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readKlondike(filepath.Join("configs", "klondike.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultKlondikeConfig()
	if err := yaml.Unmarshal(defaultKlondikeYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultKlondikeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readKlondike(path string) (KlondikeConfig, error) {
	cfg := DefaultKlondikeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".patience", "configs", filename)
}
