package rhythm

import "fmt"

// Action is one input to the reducer. The set of actions is closed: only the
// types in this file implement it.
type Action interface {
	apply(rules Rules, s State) State
	fmt.Stringer
}

// Tick advances every falling note by one step.
type Tick struct{}

// SpawnNote adds a playable note to the highway.
type SpawnNote struct {
	Note NoteProps
}

// SpawnBackgroundNote sets a preview note that is rendered and sounded but
// never scored.
type SpawnBackgroundNote struct {
	Note NoteProps
}

// Click is a player press on a lane.
type Click struct {
	Column Column
}

// EndGame marks the game as finished.
type EndGame struct{}

func (Tick) apply(rules Rules, s State) State {
	s.BackgroundNote = nil
	return tick(rules, s, nil)
}

func (a SpawnNote) apply(rules Rules, s State) State {
	notes := make([]NoteProps, len(s.UserNotes), len(s.UserNotes)+1)
	copy(notes, s.UserNotes)
	s.UserNotes = append(notes, a.Note)
	s.BackgroundNote = nil
	return tick(rules, s, nil)
}

func (a SpawnBackgroundNote) apply(rules Rules, s State) State {
	s.BackgroundNote = notePtr(a.Note)
	return tick(rules, s, nil)
}

func (a Click) apply(rules Rules, s State) State {
	for _, n := range s.UserNotes {
		if n.Column != a.Column || !rules.InHitWindow(n.CY) {
			continue
		}
		s.Score += s.Multiplier.Apply(rules.ScorePerClick)
		s.BackgroundNote = nil
		return tick(rules, s, notePtr(n))
	}

	s.BackgroundNote = nil
	return tick(rules, s, notePtr(RandomNote(int(a.Column), rules.RandomInstrument)))
}

func (EndGame) apply(_ Rules, s State) State {
	s.GameEnd = true
	return s
}

func (Tick) String() string { return "Tick" }

func (a SpawnNote) String() string {
	return fmt.Sprintf("SpawnNote(id=%d, %s)", a.Note.ID, a.Note.Column)
}

func (a SpawnBackgroundNote) String() string {
	return fmt.Sprintf("SpawnBackgroundNote(id=%d)", a.Note.ID)
}

func (a Click) String() string {
	return fmt.Sprintf("Click(%s)", a.Column)
}

func (EndGame) String() string { return "EndGame" }
