package rhythm

// Reduce applies one action to s and returns the next state. s is not
// modified and stays valid as a snapshot.
func Reduce(rules Rules, s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(rules, s)
}

// ReduceAll folds a sequence of actions over s.
func ReduceAll(rules Rules, s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(rules, s, a)
	}
	return s
}

// tick is the transition shared by every action except EndGame. played is
// the note resolved in this step, or nil.
func tick(rules Rules, s State, played *NoteProps) State {
	falling := s.UserNotes
	if played != nil {
		if i := indexOf(falling, *played); i >= 0 {
			rest := make([]NoteProps, 0, len(falling)-1)
			rest = append(rest, falling[:i]...)
			falling = append(rest, falling[i+1:]...)
		}
	}

	active := make([]NoteProps, 0, len(falling))
	missed := 0
	for _, n := range falling {
		n.CY += rules.AnimationStep
		if n.CY >= rules.MaxY {
			// Only a note landing exactly on MaxY counts as missed; one past
			// it is dropped without a penalty.
			if n.CY == rules.MaxY {
				missed++
			}
			continue
		}
		active = append(active, n)
	}

	score := s.Score - missed*rules.ScorePerClick
	clamped := score
	if clamped < 0 {
		clamped = 0
	}

	// The multiplier lags one step behind the streak it is derived from.
	multiplier := MultiplierForStreak(s.ConsecutiveNoteCount)

	streak := s.ConsecutiveNoteCount
	switch {
	case played != nil && played.IsRandom():
	case missed == 0 && played != nil:
		streak++
	case missed > 0 && played != nil:
		streak = 1
	case missed > 0:
		streak = 0
	}

	highScore := s.HighScore
	if score > highScore {
		highScore = score
	}

	var playNote *NoteProps
	if played != nil {
		playNote = notePtr(*played)
	}

	return State{
		GameEnd:              s.GameEnd,
		UserNotes:            active,
		ExitNotes:            s.UserNotes,
		PlayNote:             playNote,
		BackgroundNote:       s.BackgroundNote,
		Score:                clamped,
		HighScore:            highScore,
		Multiplier:           multiplier,
		ConsecutiveNoteCount: streak,
	}
}
