package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-rhythm/internal/song"
)

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nohost", "nohost"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}

func TestScoresLabel(t *testing.T) {
	tests := []struct {
		songID string
		want   string
	}{
		{"", "Note Highway"},
		{"endless", "Note Highway"},
		{"ode_to_joy", "Note Highway / Ode to Joy"},
		{"my_chart", "Note Highway / my_chart"},
	}
	for _, tt := range tests {
		if got := scoresLabel("Note Highway", tt.songID); got != tt.want {
			t.Errorf("scoresLabel(%q) = %q, expected %q", tt.songID, got, tt.want)
		}
	}
}

func TestApplyGameFlags(t *testing.T) {
	defer func() {
		flagSong, flagDifficulty, flagConfig, flagSongFile = "", "", "", ""
	}()

	flagSong = "twinkle"
	if err := applyGameFlags(); err != nil {
		t.Errorf("applyGameFlags() with a built-in song failed: %v", err)
	}

	flagSong = "no_such_song"
	if err := applyGameFlags(); !errors.Is(err, song.ErrUnknownSong) {
		t.Errorf("applyGameFlags() error = %v, expected ErrUnknownSong", err)
	}

	flagSong = ""
	flagDifficulty = "impossible"
	if err := applyGameFlags(); err == nil {
		t.Error("applyGameFlags() accepted an unknown difficulty")
	}

	flagDifficulty = ""
	flagSongFile = "does/not/exist.yaml"
	if err := applyGameFlags(); err == nil {
		t.Error("applyGameFlags() accepted a missing song file")
	}
}
