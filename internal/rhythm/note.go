// Package rhythm is the deterministic state reducer for the falling-note game.
// It has no I/O and no dependencies outside the standard library: every action
// is a pure transition from one State to the next.
package rhythm

import "fmt"

// Column identifies the lane a note falls through.
type Column int

// Lane columns. ColumnRandom marks synthetic notes produced by a miss-click;
// they are not bound to any lane.
const (
	ColumnGreen  Column = 0
	ColumnRed    Column = 1
	ColumnBlue   Column = 2
	ColumnYellow Column = 3
	ColumnRandom Column = 5
)

// String returns the lane name.
func (c Column) String() string {
	switch c {
	case ColumnGreen:
		return "GREEN"
	case ColumnRed:
		return "RED"
	case ColumnBlue:
		return "BLUE"
	case ColumnYellow:
		return "YELLOW"
	case ColumnRandom:
		return "RANDOM"
	default:
		return fmt.Sprintf("Column(%d)", int(c))
	}
}

// IsLane reports whether c is one of the four playable lanes.
func (c Column) IsLane() bool {
	return c >= ColumnGreen && c <= ColumnYellow
}

// NoteProps describes a single note. It is a plain value; transitions copy it.
type NoteProps struct {
	ID         int     // Unique for song notes, placeholder for synthetic ones
	UserPlayed bool    // Player-triggered (true) or background (false)
	Instrument string  // Instrument name used by the synthesizer
	Velocity   float64 // Normalized 0..1
	Pitch      int     // MIDI note number
	Start      float64 // Seconds from song start
	End        float64 // Seconds from song start
	CY         int     // Position along the fall axis, grows towards MaxY
	Column     Column
	Tail       bool // Sustained note drawn with a tail
}

// Duration returns the note length in seconds.
func (n NoteProps) Duration() float64 {
	return n.End - n.Start
}

// IsRandom reports whether the note is a synthetic miss-click note.
func (n NoteProps) IsRandom() bool {
	return n.Column == ColumnRandom
}
