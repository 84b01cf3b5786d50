package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSurvival loads the survival game configuration.
// Search order: customPath -> ~/.stunt/configs/survival.yaml -> ./configs/survival.yaml -> embedded default
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultSurvivalConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("survival.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSurvivalConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "survival.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSurvivalConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSurvivalYAML, &cfg); err != nil {
		return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stunt", "configs", filename)
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
// The engine's wave curve is the same for every preset; presets only change
// how forgiving the arena is.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.InvulnerableMs = 2500
		cfg.Enemies.BaseSpeed *= 0.75
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.InvulnerableMs = 1000
		cfg.Enemies.BaseSpeed *= 1.3
	}
}
