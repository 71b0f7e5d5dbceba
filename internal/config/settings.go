// internal/config/settings.go
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default_settings.yaml
var defaultSettingsYAML []byte

// Settings holds the user-tunable knobs that are not gameplay balance:
// PRNG seed (0 means time-based), audio, and the score file location.
type Settings struct {
	Seed  int64 `yaml:"seed"`
	Audio struct {
		Enabled bool    `yaml:"enabled"`
		Volume  float64 `yaml:"volume"`
	} `yaml:"audio"`
	ScoreFile string `yaml:"score_file"`
}

// LoadSettings loads settings.
// Search order: ~/.vector-defense/settings.yaml -> ./settings.yaml -> embedded default
func LoadSettings() (Settings, error) {
	var cfg Settings

	if userPath := userSettingsPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("settings.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded default settings: %w", err)
	}
	return normalize(cfg), nil
}

func normalize(cfg Settings) Settings {
	if cfg.ScoreFile == "" {
		cfg.ScoreFile = DefaultScoreFile
	}
	if cfg.Audio.Volume < 0 {
		cfg.Audio.Volume = 0
	}
	if cfg.Audio.Volume > 1 {
		cfg.Audio.Volume = 1
	}
	return cfg
}

// userSettingsPath returns the path to the user settings file, or empty if home is unavailable.
func userSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vector-defense", "settings.yaml")
}
