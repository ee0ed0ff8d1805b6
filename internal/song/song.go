// Package song loads note charts and turns them into timed spawn cues for the
// highway reducer.
package song

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

var (
	ErrUnknownSong = errors.New("song: unknown song")
	ErrEmptySong   = errors.New("song: no playable notes")
	ErrInvalidNote = errors.New("song: invalid note")
)

// Defaults for fields a chart may omit.
const (
	DefaultVelocity   = 0.8
	DefaultInstrument = "acoustic_grand_piano"
)

// Song is a parsed note chart.
type Song struct {
	ID         string  `yaml:"id"`
	Title      string  `yaml:"title"`
	Artist     string  `yaml:"artist"`
	BPM        float64 `yaml:"bpm"`
	Offset     float64 `yaml:"offset"` // Seconds before beat 0
	Instrument string  `yaml:"instrument"`
	Notes      []Note  `yaml:"notes"`
}

// Note is one chart entry. Beat and Length are in beats.
type Note struct {
	Beat       float64 `yaml:"beat"`
	Length     float64 `yaml:"length"`
	Lane       int     `yaml:"lane"`
	Pitch      int     `yaml:"pitch"`
	Velocity   float64 `yaml:"velocity"`
	Instrument string  `yaml:"instrument"`
	Background bool    `yaml:"background"`
}

// Parse decodes and validates a YAML chart.
func Parse(data []byte) (Song, error) {
	var s Song
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Song{}, fmt.Errorf("song: parse: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return Song{}, err
	}
	return s, nil
}

// LoadFile reads a chart from disk.
func LoadFile(path string) (Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Song{}, fmt.Errorf("song: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Song{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Song) applyDefaults() {
	if s.Instrument == "" {
		s.Instrument = DefaultInstrument
	}
	for i := range s.Notes {
		n := &s.Notes[i]
		if n.Length <= 0 {
			n.Length = 1
		}
		if n.Velocity == 0 {
			n.Velocity = DefaultVelocity
		}
		if n.Instrument == "" {
			n.Instrument = s.Instrument
		}
	}
}

// Validate checks tempo and every note.
func (s Song) Validate() error {
	if s.BPM <= 0 {
		return fmt.Errorf("song %q: bpm must be positive, got %v", s.ID, s.BPM)
	}
	playable := 0
	for i, n := range s.Notes {
		switch {
		case n.Beat < 0:
			return fmt.Errorf("%w: note %d: negative beat %v", ErrInvalidNote, i, n.Beat)
		case !n.Background && (n.Lane < 0 || n.Lane > int(rhythm.ColumnYellow)):
			return fmt.Errorf("%w: note %d: lane %d out of range", ErrInvalidNote, i, n.Lane)
		case n.Pitch < 0 || n.Pitch > 127:
			return fmt.Errorf("%w: note %d: pitch %d out of range", ErrInvalidNote, i, n.Pitch)
		case n.Velocity < 0 || n.Velocity > 1:
			return fmt.Errorf("%w: note %d: velocity %v out of range", ErrInvalidNote, i, n.Velocity)
		}
		if !n.Background {
			playable++
		}
	}
	if playable == 0 {
		return fmt.Errorf("song %q: %w", s.ID, ErrEmptySong)
	}
	return nil
}

// Seconds converts a beat position to seconds from song start.
func (s Song) Seconds(beat float64) float64 {
	return s.Offset + beat*60/s.BPM
}

// Duration returns the time of the last note end in seconds.
func (s Song) Duration() float64 {
	var end float64
	for _, n := range s.Notes {
		end = math.Max(end, s.Seconds(n.Beat+n.Length))
	}
	return end
}

// PlayableCount returns the number of scored notes.
func (s Song) PlayableCount() int {
	count := 0
	for _, n := range s.Notes {
		if !n.Background {
			count++
		}
	}
	return count
}

// Notes converts the chart into reducer notes ordered by start time.
// IDs are assigned sequentially across both slices.
func (s Song) Notes(timing config.TimingConfig) (playable, background []rhythm.NoteProps) {
	ordered := make([]Note, len(s.Notes))
	copy(ordered, s.Notes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Beat < ordered[j].Beat
	})

	tailMin := float64(timing.TailMinMS) / 1000
	for id, n := range ordered {
		start := s.Seconds(n.Beat)
		end := s.Seconds(n.Beat + n.Length)
		props := rhythm.NoteProps{
			ID:         id,
			Instrument: n.Instrument,
			Velocity:   n.Velocity,
			Pitch:      n.Pitch,
			Start:      start,
			End:        end,
			Column:     rhythm.Column(n.Lane),
			Tail:       end-start >= tailMin,
		}
		if n.Background {
			props.Tail = false
			background = append(background, props)
		} else {
			playable = append(playable, props)
		}
	}
	return playable, background
}
