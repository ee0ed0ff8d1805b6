package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
)

// Player mixes note streamers onto the speaker. A disabled Player accepts
// every call and plays nothing.
type Player struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	mixer       *beep.Mixer
}

// NewPlayer creates a player. Nothing touches the audio device until Init.
func NewPlayer(enabled bool) *Player {
	return &Player{
		enabled: enabled,
		mixer:   &beep.Mixer{},
	}
}

// Enabled reports whether the player produces sound.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// Init opens the speaker once. On failure the player disables itself so the
// game keeps running silently.
func (p *Player) Init() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		p.enabled = false
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play sounds the given notes. It returns the first synthesis error; notes
// that fail to build are skipped.
func (p *Player) Play(notes ...rhythm.NoteProps) error {
	if p == nil || len(notes) == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.initialized {
		return nil
	}

	var firstErr error
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := NoteStreamer(n, SampleRate)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		streamers = append(streamers, s)
	}

	speaker.Lock()
	p.mixer.Add(streamers...)
	speaker.Unlock()
	return firstErr
}

// Close silences everything still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
