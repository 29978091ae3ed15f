package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArkanoid loads Arkanoid configuration.
// Search order: customPath -> ~/.arcade/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Files found by the
// search are skipped silently when broken. The result is always validated.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArkanoidConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseArkanoid(data)
		if err != nil {
			return ArkanoidConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths("arkanoid.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseArkanoid(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := ParseArkanoid(defaultArkanoidYAML)
	if err != nil {
		cfg = DefaultArkanoidConfig() // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// ParseArkanoid decodes YAML on top of the hardcoded defaults, so partial
// files only need to list the settings they change.
func ParseArkanoid(data []byte) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArkanoidConfig{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyArkanoidPreset modifies the config based on a difficulty preset.
// Presets only change starting values; the ball speed stays constant in play.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Ball.Velocity = 6
		cfg.Paddle.Width = 80
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Ball.Velocity = 10
		cfg.Paddle.Velocity = 10
		cfg.Paddle.Width = 50
	}
}
