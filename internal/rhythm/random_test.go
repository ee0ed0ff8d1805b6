package rhythm

import "testing"

func TestRandomRange(t *testing.T) {
	for seed := -200; seed < 2000; seed++ {
		v := Random(seed)
		if v < 0 || v >= 1 {
			t.Fatalf("Random(%d) = %v, out of [0, 1)", seed, v)
		}
	}
}

func TestRandomIsDeterministic(t *testing.T) {
	for seed := 0; seed < 50; seed++ {
		if Random(seed) != Random(seed) {
			t.Fatalf("Random(%d) is not deterministic", seed)
		}
		if RandomNote(seed, "piano") != RandomNote(seed, "piano") {
			t.Fatalf("RandomNote(%d) is not deterministic", seed)
		}
	}
}

func TestRandomNoteFields(t *testing.T) {
	for seed := 0; seed < 500; seed++ {
		n := RandomNote(seed, "synth")
		if n.Velocity < 0 || n.Velocity > 1 {
			t.Errorf("seed %d: Velocity = %v", seed, n.Velocity)
		}
		if n.Pitch < RandomPitchMin || n.Pitch > RandomPitchMax {
			t.Errorf("seed %d: Pitch = %d", seed, n.Pitch)
		}
		if n.Column != ColumnRandom || n.CY != 0 || n.Tail {
			t.Errorf("seed %d: unexpected shape %+v", seed, n)
		}
		if n.Instrument != "synth" {
			t.Errorf("seed %d: Instrument = %q", seed, n.Instrument)
		}
	}
}

func TestRandomNoteDiffersPerLane(t *testing.T) {
	seen := make(map[NoteProps]bool)
	for lane := 0; lane < 4; lane++ {
		seen[RandomNote(lane, "piano")] = true
	}
	if len(seen) < 2 {
		t.Error("lanes should not all produce the same synthetic note")
	}
}

func TestRandomNoteUsesSeedHash(t *testing.T) {
	for seed := 0; seed < 50; seed++ {
		n := RandomNote(seed, "piano")
		if n.Velocity != Random(seed+1) {
			t.Errorf("seed %d: Velocity = %v, expected Random(%d) = %v", seed, n.Velocity, seed+1, Random(seed+1))
		}
		if n != RandomNote(seed, "piano") {
			t.Errorf("seed %d: RandomNote() is not reproducible", seed)
		}
	}
}
