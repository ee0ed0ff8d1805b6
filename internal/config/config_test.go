package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultHighwayConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("highway"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultHighwayConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultHighwayConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadHighwayCustomPathOverridesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highway.yaml")
	data := []byte("rules:\n  threshold_y: 90\nendless:\n  max_misses: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHighway(path)
	if err != nil {
		t.Fatalf("LoadHighway() error = %v", err)
	}
	if cfg.Rules.ThresholdY != 90 {
		t.Errorf("ThresholdY = %d, expected 90", cfg.Rules.ThresholdY)
	}
	if cfg.Endless.MaxMisses != 3 {
		t.Errorf("MaxMisses = %d, expected 3", cfg.Endless.MaxMisses)
	}
	if cfg.Rules.MaxY != 600 {
		t.Errorf("MaxY = %d, expected default 600 to survive", cfg.Rules.MaxY)
	}
}

func TestLoadHighwayErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadHighway(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHighway(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("rules:\n  animation_step: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHighway(invalid); err == nil {
		t.Error("expected validation error for zero animation_step")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HighwayConfig)
		ok     bool
	}{
		{"defaults", func(*HighwayConfig) {}, true},
		{"zero lanes", func(c *HighwayConfig) { c.Rules.Lanes = 0 }, false},
		{"five lanes", func(c *HighwayConfig) { c.Rules.Lanes = 5 }, false},
		{"zero max_y", func(c *HighwayConfig) { c.Rules.MaxY = 0 }, false},
		{"step overshoots max_y", func(c *HighwayConfig) { c.Rules.AnimationStep = 7 }, false},
		{"step divides max_y", func(c *HighwayConfig) { c.Rules.AnimationStep = 6 }, true},
		{"threshold above max_y", func(c *HighwayConfig) { c.Rules.ThresholdY = 601 }, false},
		{"threshold equals max_y", func(c *HighwayConfig) { c.Rules.ThresholdY = 600 }, true},
		{"negative score", func(c *HighwayConfig) { c.Rules.ScorePerClick = -1 }, false},
		{"zero interval", func(c *HighwayConfig) { c.Timing.TickIntervalMS = 0 }, false},
		{"spacing inverted", func(c *HighwayConfig) { c.Endless.MinSpacing = 200 }, false},
		{"no lives", func(c *HighwayConfig) { c.Endless.MaxMisses = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultHighwayConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
		})
	}
}

func TestToRules(t *testing.T) {
	r := DefaultHighwayConfig().ToRules()
	if r.MaxY != 600 || r.ThresholdY != 60 || r.ScorePerClick != 5 || r.AnimationStep != 1 {
		t.Errorf("ToRules() = %+v, expected default rules", r)
	}
	if r.RandomInstrument != "acoustic_grand_piano" {
		t.Errorf("RandomInstrument = %q", r.RandomInstrument)
	}
}

func TestApplyHighwayPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		threshold int
		misses    int
		enabled   bool
		level     float64
	}{
		{DifficultyEasy, 90, 15, true, 0.0},
		{DifficultyNormal, 60, 10, true, 0.3},
		{DifficultyHard, 40, 5, true, 0.7},
		{DifficultyFixed, 60, 10, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultHighwayConfig()
			ApplyHighwayPreset(&cfg, tt.preset)
			if cfg.Rules.ThresholdY != tt.threshold {
				t.Errorf("ThresholdY = %d, expected %d", cfg.Rules.ThresholdY, tt.threshold)
			}
			if cfg.Endless.MaxMisses != tt.misses {
				t.Errorf("MaxMisses = %d, expected %d", cfg.Endless.MaxMisses, tt.misses)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if tt.enabled && cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = (%q, %v), expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = (%q, %v)", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
