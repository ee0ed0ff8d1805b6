package rhythm

import "math"

// Pitch range of synthetic notes (piano keys A0..C8).
const (
	RandomPitchMin = 21
	RandomPitchMax = 108
)

// Random returns a reproducible value in [0, 1) for seed.
func Random(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}

// RandomNote builds the synthetic note played on a miss-click. The same seed
// always yields the same note.
func RandomNote(seed int, instrument string) NoteProps {
	velocity := Random(seed + 1)
	span := RandomPitchMax - RandomPitchMin + 1
	pitch := RandomPitchMin + int(math.Floor(Random(seed+2)*float64(span)))
	if pitch > RandomPitchMax {
		pitch = RandomPitchMax
	}

	return NoteProps{
		ID:         -1,
		UserPlayed: true,
		Instrument: instrument,
		Velocity:   velocity,
		Pitch:      pitch,
		CY:         0,
		Column:     ColumnRandom,
		Tail:       false,
	}
}
