package config

import (
	"math"
	"testing"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled: true,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: 100,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier:  1.0,
			SpacingReduction: 60,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{500, 1.0},
	}

	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Level(%d, 0) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestDifficultyLevelFromInitial(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())
	d.SetInitialLevel(0.5)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(50, 0); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level halfway = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(0.2)

	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := d.Level(1000, 1000); got != 0.2 {
		t.Errorf("Level() = %v, expected fixed 0.2", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficulty()
	cfg.Progression.Type = "time"
	d := NewDifficultyManager(cfg)

	if got := d.Level(1000, 25); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Level(_, 25) = %v, expected 0.25", got)
	}
}

func TestDifficultySpeedAndSpacing(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if got := d.Speed(0, 0); got != 1.0 {
		t.Errorf("Speed at level 0 = %v, expected 1.0", got)
	}
	if got := d.Speed(100, 0); got != 2.0 {
		t.Errorf("Speed at level 1 = %v, expected 2.0", got)
	}

	tests := []struct {
		score, base, min, expected int
	}{
		{0, 120, 30, 120},
		{50, 120, 30, 90},
		{100, 120, 30, 60},
		{100, 80, 30, 30}, // clamped to min
	}
	for _, tt := range tests {
		if got := d.Spacing(tt.base, tt.min, tt.score, 0); got != tt.expected {
			t.Errorf("Spacing(%d, %d, %d) = %d, expected %d", tt.base, tt.min, tt.score, got, tt.expected)
		}
	}
}
