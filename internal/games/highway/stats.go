package highway

// Stats counts how notes were resolved during a run.
type Stats struct {
	Hits       int // Notes played inside the hit window
	Misses     int // Notes that fell through
	MissClicks int // Presses with no note to play
	MaxStreak  int
}

// Judged returns the number of notes and presses that affected accuracy.
func (s Stats) Judged() int {
	return s.Hits + s.Misses + s.MissClicks
}

// Accuracy is the share of judged events that were hits. A run with nothing
// judged yet counts as perfect.
func (s Stats) Accuracy() float64 {
	total := s.Judged()
	if total == 0 {
		return 1
	}
	return float64(s.Hits) / float64(total)
}
