package rhythm

import "fmt"

// Multiplier is a score multiplier stored in hundredths, so 120 means x1.20.
// Keeping it fixed-point makes the two-decimal quantization exact.
type Multiplier int

// MultiplierOne is the neutral multiplier (x1.00).
const MultiplierOne Multiplier = 100

// Float64 returns the multiplier as a float.
func (m Multiplier) Float64() float64 {
	return float64(m) / 100
}

// Apply returns floor(base * m).
func (m Multiplier) Apply(base int) int {
	return base * int(m) / 100
}

// String formats the multiplier as "x1.20".
func (m Multiplier) String() string {
	return fmt.Sprintf("x%d.%02d", int(m)/100, int(m)%100)
}

// MultiplierForStreak returns the multiplier earned by a streak: +0.2 for
// every 10 consecutive hits, never below x1.00.
func MultiplierForStreak(streak int) Multiplier {
	m := MultiplierOne + Multiplier(streak/10)*20
	if m < MultiplierOne {
		return MultiplierOne
	}
	return m
}

// State is an immutable snapshot of the game. Transitions build a new State
// and never write through the slices or pointers of the previous one.
type State struct {
	GameEnd              bool
	UserNotes            []NoteProps // Falling, unresolved notes in spawn order
	ExitNotes            []NoteProps // UserNotes as they were before the last step
	PlayNote             *NoteProps  // Note resolved as played by the last step
	BackgroundNote       *NoteProps  // Preview-only note, never scored
	Score                int
	HighScore            int
	Multiplier           Multiplier
	ConsecutiveNoteCount int
}

// NewState returns the initial state of a game, carrying over a previous best.
func NewState(highScore int) State {
	if highScore < 0 {
		highScore = 0
	}
	return State{
		HighScore:  highScore,
		Multiplier: MultiplierOne,
	}
}

// Left returns the notes that left UserNotes during the step that produced s,
// excluding the played note.
func (s State) Left() []NoteProps {
	var left []NoteProps
	for _, n := range s.ExitNotes {
		if s.PlayNote != nil && sameNote(n, *s.PlayNote) {
			continue
		}
		if containsNote(s.UserNotes, n) {
			continue
		}
		left = append(left, n)
	}
	return left
}

// Missed returns the notes that left UserNotes by landing exactly on MaxY
// during the step that produced s. Notes that overshot MaxY are not included.
func (s State) Missed(rules Rules) []NoteProps {
	var missed []NoteProps
	for _, n := range s.Left() {
		if n.CY+rules.AnimationStep == rules.MaxY {
			missed = append(missed, n)
		}
	}
	return missed
}

func indexOf(notes []NoteProps, note NoteProps) int {
	for i, n := range notes {
		if n == note {
			return i
		}
	}
	return -1
}

// sameNote matches a note across steps, where its CY differs.
func sameNote(a, b NoteProps) bool {
	return a.ID == b.ID && a.Column == b.Column && a.Start == b.Start
}

func containsNote(notes []NoteProps, note NoteProps) bool {
	for _, n := range notes {
		if sameNote(n, note) {
			return true
		}
	}
	return false
}

func notePtr(n NoteProps) *NoteProps {
	return &n
}
