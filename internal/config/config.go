// Package config provides YAML-based highway configuration loading and
// difficulty management for the rhythm platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// HighwayConfig contains all configuration for the note highway.
type HighwayConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Endless    EndlessConfig    `yaml:"endless"`
}

// RulesConfig mirrors rhythm.Rules.
type RulesConfig struct {
	Lanes            int    `yaml:"lanes"`
	MaxY             int    `yaml:"max_y"`       // Fall distance
	ThresholdY       int    `yaml:"threshold_y"` // Hit window height, measured up from max_y
	ScorePerClick    int    `yaml:"score_per_click"`
	AnimationStep    int    `yaml:"animation_step"` // Distance per tick
	RandomInstrument string `yaml:"random_instrument"`
}

// TimingConfig maps reducer ticks onto wall-clock time.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
	LeadInMS       int `yaml:"lead_in_ms"`  // Silence before the first note
	TailMinMS      int `yaml:"tail_min_ms"` // Notes at least this long get a tail
}

// EndlessConfig tunes the generated note stream.
type EndlessConfig struct {
	BaseSpacing int     `yaml:"base_spacing"` // Ticks between spawns at level 0
	MinSpacing  int     `yaml:"min_spacing"`
	MaxMisses   int     `yaml:"max_misses"`
	TailChance  float64 `yaml:"tail_chance"`
	Instrument  string  `yaml:"instrument"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to fall speed at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spawn spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports the first setting the reducer cannot run with.
func (c HighwayConfig) Validate() error {
	r := c.Rules
	switch {
	case r.Lanes < 1 || r.Lanes > 4:
		return fmt.Errorf("config: lanes must be between 1 and 4, got %d", r.Lanes)
	case r.MaxY <= 0:
		return fmt.Errorf("config: max_y must be positive, got %d", r.MaxY)
	case r.AnimationStep <= 0:
		return fmt.Errorf("config: animation_step must be positive, got %d", r.AnimationStep)
	case r.MaxY%r.AnimationStep != 0:
		return fmt.Errorf("config: max_y %d is not a multiple of animation_step %d", r.MaxY, r.AnimationStep)
	case r.ThresholdY <= 0 || r.ThresholdY > r.MaxY:
		return fmt.Errorf("config: threshold_y must be in (0, max_y], got %d", r.ThresholdY)
	case r.ScorePerClick < 0:
		return fmt.Errorf("config: score_per_click must not be negative, got %d", r.ScorePerClick)
	case c.Timing.TickIntervalMS <= 0:
		return fmt.Errorf("config: tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMS)
	case c.Endless.MinSpacing <= 0 || c.Endless.BaseSpacing < c.Endless.MinSpacing:
		return fmt.Errorf("config: endless spacing must satisfy 0 < min_spacing <= base_spacing")
	case c.Endless.MaxMisses <= 0:
		return fmt.Errorf("config: max_misses must be positive, got %d", c.Endless.MaxMisses)
	}
	return nil
}

// ToRules converts the rules section into reducer rules.
func (c HighwayConfig) ToRules() rhythm.Rules {
	return rhythm.Rules{
		Lanes:            c.Rules.Lanes,
		MaxY:             c.Rules.MaxY,
		ThresholdY:       c.Rules.ThresholdY,
		ScorePerClick:    c.Rules.ScorePerClick,
		AnimationStep:    c.Rules.AnimationStep,
		RandomInstrument: c.Rules.RandomInstrument,
	}
}
