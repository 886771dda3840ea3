package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snek.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load loads settings and applies the configured difficulty preset.
// Search order: customPath -> ~/.snek/config.yaml -> ./snek.yaml -> embedded default.
// Keys missing from the file keep their default values.
func Load(customPath string) (Settings, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}

	preset, err := ParsePreset(string(cfg.Difficulty))
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)

	return cfg, nil
}

func load(customPath string) (Settings, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try working directory
	if data, err := os.ReadFile("snek.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a file in the user config directory, or
// empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snek", filename)
}
