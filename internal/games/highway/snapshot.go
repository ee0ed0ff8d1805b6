package highway

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64 // Reducer steps applied
	Frames     uint64
	Mode       int // 0=Song, 1=Endless
	Score      int
	HighScore  int
	Multiplier int // Hundredths
	Streak     int
	Hits       int
	Misses     int
	MissClicks int
	State      GameStateType

	// Falling notes (each note is 3 ints: ID, Column, CY)
	NoteCount int
	NoteData  []int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.state.GameEnd:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	notes := g.state.UserNotes
	data := make([]int, 0, len(notes)*3)
	for _, n := range notes {
		data = append(data, n.ID, int(n.Column), n.CY)
	}

	return Snapshot{
		Tick:       uint64(g.step), //#nosec G115 -- step is never negative
		Frames:     g.frames,
		Mode:       int(g.mode),
		Score:      g.state.Score,
		HighScore:  g.state.HighScore,
		Multiplier: int(g.state.Multiplier),
		Streak:     g.state.ConsecutiveNoteCount,
		Hits:       g.stats.Hits,
		Misses:     g.stats.Misses,
		MissClicks: g.stats.MissClicks,
		State:      state,
		NoteCount:  len(notes),
		NoteData:   data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + snap.Frames
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Multiplier) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Streak)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Misses)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MissClicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NoteCount)  //#nosec G115 -- hash computation

	for _, v := range snap.NoteData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	return h
}
