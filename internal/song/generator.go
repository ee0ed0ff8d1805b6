package song

import (
	"math/rand"

	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// pentatonic offsets from the root, in semitones.
var pentatonic = [...]int{0, 2, 4, 7, 9}

const (
	generatorRoot     = 60 // middle C
	backingEvery      = 4  // one backing note per this many spawns
	generatorVelocity = 0.75
)

// Generator produces an endless stream of cues. Spacing tightens as the
// difficulty level rises.
type Generator struct {
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	endless    config.EndlessConfig
	timing     config.TimingConfig
	lanes      int
	travel     int

	nextTick int
	nextID   int
	spawned  int
	backing  []Cue // background cues waiting for their tick
}

// NewGenerator creates a generator seeded for deterministic runs.
func NewGenerator(seed int64, rules rhythm.Rules, cfg config.HighwayConfig, dm *config.DifficultyManager) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: dm,
		endless:    cfg.Endless,
		timing:     cfg.Timing,
		lanes:      max(rules.Lanes, 1),
		travel:     rules.TravelSteps(),
		nextTick:   msToTicks(cfg.Timing.LeadInMS, cfg.Timing),
	}
}

// Due returns the cues scheduled at or before tick. Score feeds the
// difficulty curve.
func (g *Generator) Due(tick, score int) []Cue {
	var cues []Cue
	for len(g.backing) > 0 && g.backing[0].Tick <= tick {
		cues = append(cues, g.backing[0])
		g.backing = g.backing[1:]
	}
	for g.nextTick <= tick {
		cues = append(cues, g.spawn(g.nextTick))
		g.nextTick += g.difficulty.Spacing(g.endless.BaseSpacing, g.endless.MinSpacing, score, tick)
	}
	return cues
}

// Done is always false; the endless stream ends only when the player runs out
// of misses.
func (g *Generator) Done() bool {
	return false
}

func (g *Generator) spawn(tick int) Cue {
	interval := float64(g.timing.TickIntervalMS) / 1000
	start := float64(tick+g.travel) * interval

	length := 0.3
	tail := g.rng.Float64() < g.endless.TailChance
	if tail {
		length = 0.8 + g.rng.Float64()*0.6
	}
	octave := g.rng.Intn(2) * 12
	note := rhythm.NoteProps{
		ID:         g.nextID,
		Instrument: g.endless.Instrument,
		Velocity:   generatorVelocity,
		Pitch:      generatorRoot + octave + pentatonic[g.rng.Intn(len(pentatonic))],
		Start:      start,
		End:        start + length,
		Column:     rhythm.Column(g.rng.Intn(g.lanes)),
		Tail:       tail,
	}
	g.nextID++

	g.spawned++
	if g.spawned%backingEvery == 1 {
		bass := rhythm.NoteProps{
			ID:         g.nextID,
			Instrument: "acoustic_bass",
			Velocity:   0.5,
			Pitch:      generatorRoot - 24 + pentatonic[g.rng.Intn(len(pentatonic))],
			Start:      start,
			End:        start + 1.2,
			Column:     rhythm.ColumnRandom,
		}
		g.nextID++
		g.backing = append(g.backing, Cue{Tick: tick + g.travel, Note: bass, Background: true})
	}
	return Cue{Tick: tick, Note: note}
}
