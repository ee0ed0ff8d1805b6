package song

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// Cue is a note due to enter the reducer at a given step.
type Cue struct {
	Tick       int
	Note       rhythm.NoteProps
	Background bool
}

// Action returns the reducer action that delivers the cue.
func (c Cue) Action() rhythm.Action {
	if c.Background {
		return rhythm.SpawnBackgroundNote{Note: c.Note}
	}
	return rhythm.SpawnNote{Note: c.Note}
}

// Scheduler releases a song's notes so that each playable note reaches the
// middle of the hit window at its start time. Background notes are released
// at their start time.
type Scheduler struct {
	cues    []Cue
	next    int
	endTick int
}

// NewScheduler builds the cue list for a song. Ticks count reducer steps of
// timing.TickIntervalMS each.
func NewScheduler(s Song, rules rhythm.Rules, timing config.TimingConfig) *Scheduler {
	playable, background := s.Notes(timing)
	travel := rules.TravelSteps()
	fallSteps := 0
	if rules.AnimationStep > 0 {
		fallSteps = (rules.MaxY + rules.AnimationStep - 1) / rules.AnimationStep
	}

	firstHit := math.MaxInt
	for _, n := range playable {
		firstHit = min(firstHit, secondsToTicks(n.Start, timing))
	}
	// Shift the whole song so the first spawn lands after the lead-in.
	shift := msToTicks(timing.LeadInMS, timing)
	if len(playable) > 0 && firstHit < travel {
		shift += travel - firstHit
	}

	sch := &Scheduler{}
	for _, n := range playable {
		spawn := secondsToTicks(n.Start, timing) + shift - travel
		sch.cues = append(sch.cues, Cue{Tick: spawn, Note: n})
		sch.endTick = max(sch.endTick, spawn+fallSteps)
	}
	for _, n := range background {
		at := secondsToTicks(n.Start, timing) + shift
		sch.cues = append(sch.cues, Cue{Tick: at, Note: n, Background: true})
		sch.endTick = max(sch.endTick, secondsToTicks(n.End, timing)+shift)
	}
	sort.SliceStable(sch.cues, func(i, j int) bool {
		if sch.cues[i].Tick != sch.cues[j].Tick {
			return sch.cues[i].Tick < sch.cues[j].Tick
		}
		return sch.cues[i].Note.ID < sch.cues[j].Note.ID
	})
	return sch
}

// Due returns the cues whose tick is at or before tick and that have not been
// returned yet.
func (s *Scheduler) Due(tick int) []Cue {
	start := s.next
	for s.next < len(s.cues) && s.cues[s.next].Tick <= tick {
		s.next++
	}
	if start == s.next {
		return nil
	}
	return s.cues[start:s.next]
}

// Done reports whether every cue has been released.
func (s *Scheduler) Done() bool {
	return s.next >= len(s.cues)
}

// EndTick is the step after which every note has either been played or
// fallen out.
func (s *Scheduler) EndTick() int {
	return s.endTick
}

// Len returns the total number of cues.
func (s *Scheduler) Len() int {
	return len(s.cues)
}

func secondsToTicks(sec float64, timing config.TimingConfig) int {
	return int(math.Round(sec * 1000 / float64(timing.TickIntervalMS)))
}

func msToTicks(ms int, timing config.TimingConfig) int {
	return ms / timing.TickIntervalMS
}
