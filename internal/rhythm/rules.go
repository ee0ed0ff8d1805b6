package rhythm

// Rules holds the numeric constants of the game. A Rules value is passed to
// every transition instead of living in package globals, so tests can run the
// reducer with different parameters.
type Rules struct {
	Lanes            int    // Number of playable lanes
	MaxY             int    // Notes reaching this cy are missed
	ThresholdY       int    // Hit window height measured upward from MaxY
	ScorePerClick    int    // Base award per hit and penalty per miss
	AnimationStep    int    // cy advance per step
	RandomInstrument string // Instrument given to miss-click notes
}

// DefaultRules returns the standard game constants.
func DefaultRules() Rules {
	return Rules{
		Lanes:            4,
		MaxY:             600,
		ThresholdY:       60,
		ScorePerClick:    5,
		AnimationStep:    1,
		RandomInstrument: "acoustic_grand_piano",
	}
}

// InHitWindow reports whether a note at cy can be hit by a click.
func (r Rules) InHitWindow(cy int) bool {
	return cy > r.MaxY-r.ThresholdY
}

// TravelSteps returns how many steps a note spawned at cy 0 needs to reach
// the middle of the hit window.
func (r Rules) TravelSteps() int {
	if r.AnimationStep <= 0 {
		return 0
	}
	return (r.MaxY - r.ThresholdY/2) / r.AnimationStep
}
