package song

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-rhythm/internal/config"
)

func newTestGenerator(seed int64) *Generator {
	cfg := config.DefaultHighwayConfig()
	cfg.Timing.LeadInMS = 0
	dm := config.NewDifficultyManager(cfg.Difficulty)
	return NewGenerator(seed, cfg.ToRules(), cfg, dm)
}

func collect(g *Generator, ticks int) []Cue {
	var all []Cue
	for tick := 0; tick < ticks; tick++ {
		all = append(all, g.Due(tick, 0)...)
	}
	return all
}

func TestGeneratorDeterminism(t *testing.T) {
	a := collect(newTestGenerator(42), 5000)
	b := collect(newTestGenerator(42), 5000)

	if len(a) == 0 {
		t.Fatal("generator produced no cues")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce identical cues")
	}

	c := collect(newTestGenerator(7), 5000)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should produce different cues")
	}
}

func TestGeneratorNotes(t *testing.T) {
	g := newTestGenerator(1)
	cues := collect(g, 3000)

	seen := make(map[int]bool)
	playable := 0
	for _, c := range cues {
		if seen[c.Note.ID] {
			t.Errorf("duplicate note id %d", c.Note.ID)
		}
		seen[c.Note.ID] = true
		if c.Background {
			continue
		}
		playable++
		if !c.Note.Column.IsLane() {
			t.Errorf("playable note in %s", c.Note.Column)
		}
		if c.Note.Pitch < 60 || c.Note.Pitch > 81 {
			t.Errorf("pitch %d outside the generator range", c.Note.Pitch)
		}
	}
	// Spacing is 120 ticks at level 0: ticks 0, 120, ..., 2880.
	if playable != 25 {
		t.Errorf("playable cues = %d, expected 25", playable)
	}
	if g.Done() {
		t.Error("Done() = true, the endless stream never finishes")
	}
}

func TestGeneratorSpacingTightensWithScore(t *testing.T) {
	g := newTestGenerator(3)
	count := 0
	for tick := 0; tick < 3000; tick++ {
		for _, c := range g.Due(tick, 500) { // max difficulty
			if !c.Background {
				count++
			}
		}
	}
	// Spacing 120 - 80 = 40 ticks.
	if count != 75 {
		t.Errorf("playable cues at max difficulty = %d, expected 75", count)
	}
}
