package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

//go:embed defaults/highway.yaml
var defaultHighwayYAML []byte

// DefaultHighwayConfig returns the default highway configuration.
func DefaultHighwayConfig() HighwayConfig {
	r := rhythm.DefaultRules()
	return HighwayConfig{
		Rules: RulesConfig{
			Lanes:            r.Lanes,
			MaxY:             r.MaxY,
			ThresholdY:       r.ThresholdY,
			ScorePerClick:    r.ScorePerClick,
			AnimationStep:    r.AnimationStep,
			RandomInstrument: r.RandomInstrument,
		},
		Timing: TimingConfig{
			TickIntervalMS: 7,
			LeadInMS:       1500,
			TailMinMS:      800,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.75,
				SpacingReduction: 80,
			},
		},
		Endless: EndlessConfig{
			BaseSpacing: 120,
			MinSpacing:  30,
			MaxMisses:   10,
			TailChance:  0.15,
			Instrument:  "electric_piano_1",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "highway", "highway_endless":
		return defaultHighwayYAML
	default:
		return nil
	}
}
