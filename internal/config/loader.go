package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads the crossing configuration.
// Search order: customPath -> ~/.arcade/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
//
// Fields missing from a file keep their default values.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Broken files there are skipped rather than reported.
	candidates := []string{userConfigPath("crossing.yaml"), filepath.Join("configs", "crossing.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoadCrossing(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	cfg = DefaultCrossingConfig()
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoadCrossing(path string) (CrossingConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrossingConfig{}, false
	}
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossingConfig{}, false
	}
	if cfg.Validate() != nil {
		return CrossingConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
