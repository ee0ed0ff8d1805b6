package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHighway loads the highway configuration.
// Search order: customPath -> ~/.rhythm/configs/highway.yaml -> ./configs/highway.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadHighway(customPath string) (HighwayConfig, error) {
	cfg := DefaultHighwayConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("highway.yaml"), filepath.Join("configs", "highway.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultHighwayConfig()
	if err := yaml.Unmarshal(defaultHighwayYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultHighwayConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (HighwayConfig, bool) {
	cfg := DefaultHighwayConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rhythm", "configs", filename)
}

// ApplyHighwayPreset modifies the config based on a difficulty preset.
func ApplyHighwayPreset(cfg *HighwayConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the hit window and lives based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.ThresholdY = cfg.Rules.ThresholdY * 3 / 2
		cfg.Endless.MaxMisses += cfg.Endless.MaxMisses / 2
	case DifficultyHard:
		cfg.Rules.ThresholdY = max(cfg.Rules.ThresholdY*2/3, cfg.Rules.AnimationStep)
		cfg.Endless.MaxMisses = max(cfg.Endless.MaxMisses/2, 1)
	}
	if cfg.Rules.ThresholdY > cfg.Rules.MaxY {
		cfg.Rules.ThresholdY = cfg.Rules.MaxY
	}
}
