// Package audio sounds highway notes through the system speaker using beep.
package audio

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

const (
	// SampleRate is used for every generated note.
	SampleRate = beep.SampleRate(44100)

	DefaultNoteDuration = 150 * time.Millisecond
	MaxNoteDuration     = time.Second

	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

// MIDIToFrequency converts a MIDI pitch to Hz (A4 = 69 = 440 Hz).
func MIDIToFrequency(pitch int) float64 {
	return 440 * math.Pow(2, float64(pitch-69)/12)
}

// NoteDuration returns how long a note sounds. Notes without a length get a
// short blip; long notes are capped.
func NoteDuration(n rhythm.NoteProps) time.Duration {
	d := time.Duration(n.Duration() * float64(time.Second))
	if d <= 0 {
		return DefaultNoteDuration
	}
	return min(d, MaxNoteDuration)
}

// harmonics returns relative partial levels for an instrument name.
func harmonics(instrument string) []float64 {
	switch {
	case strings.Contains(instrument, "bass"):
		return []float64{1.0, 0.4}
	case strings.Contains(instrument, "music_box"):
		return []float64{1.0, 0.0, 0.0, 0.35}
	case strings.Contains(instrument, "electric"):
		return []float64{1.0, 0.5, 0.25}
	default: // piano-ish
		return []float64{1.0, 0.3, 0.1}
	}
}

// NoteStreamer builds a finite streamer for one note: a sine stack at the
// note's pitch, shaped by a short attack/release and scaled by velocity.
func NoteStreamer(n rhythm.NoteProps, sr beep.SampleRate) (beep.Streamer, error) {
	freq := MIDIToFrequency(n.Pitch)
	dur := NoteDuration(n)

	var partials []beep.Streamer
	var total float64
	for i, level := range harmonics(n.Instrument) {
		f := freq * float64(i+1)
		if level == 0 || f >= float64(sr)/2 {
			continue
		}
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %.1f Hz: %w", f, err)
		}
		partials = append(partials, newVolume(tone, level))
		total += level
	}
	if len(partials) == 0 {
		return nil, fmt.Errorf("audio: pitch %d is above the audible range for %d Hz", n.Pitch, sr)
	}

	mixed := newVolume(beep.Mix(partials...), 1/total)
	shaped := newEnvelope(beep.Take(sr.N(dur), mixed), dur, sr)
	return newVolume(shaped, math.Min(math.Max(n.Velocity, 0), 1)), nil
}

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d time.Duration, sr beep.SampleRate) beep.Streamer {
	total := sr.N(d)
	att := min(sr.N(attack), total/2)
	rel := min(sr.N(release), total-att)
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero volume is silent since log2(0)
// is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
