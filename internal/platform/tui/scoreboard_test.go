package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rhythm/internal/song"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

func TestBoards(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Result{
		{GameID: "highway", SongID: "ode_to_joy", Score: 10},
		{GameID: "highway", SongID: "custom_chart", Score: 20},
	} {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatal(err)
		}
	}

	boards := Boards(store)
	catalog := song.Catalog()
	if len(boards) != len(catalog)+2 {
		t.Fatalf("Boards() returned %d boards, expected %d", len(boards), len(catalog)+2)
	}
	for i, s := range catalog {
		if boards[i].GameID != "highway" || boards[i].SongID != s.ID {
			t.Errorf("boards[%d] = %+v, expected highway/%s", i, boards[i], s.ID)
		}
	}
	custom := boards[len(catalog)]
	if custom.SongID != "custom_chart" || custom.Title != "custom_chart" {
		t.Errorf("custom board = %+v, expected custom_chart", custom)
	}
	last := boards[len(boards)-1]
	if last.GameID != "highway_endless" || last.SongID != "endless" {
		t.Errorf("last board = %+v, expected endless", last)
	}
}

func TestScoreboardCyclesBoards(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore(storage.Result{GameID: "highway_endless", SongID: "endless", Score: 99, MaxStreak: 7, Accuracy: 0.75}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	n := len(m.boards)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.boardCursor != n-1 {
		t.Fatalf("boardCursor = %d after shift+tab, expected %d", m.boardCursor, n-1)
	}
	if len(m.scores) != 1 || m.scores[0].Score != 99 {
		t.Fatalf("endless scores = %+v, expected one score of 99", m.scores)
	}
	view := m.View()
	if !strings.Contains(view, "75.0%") || !strings.Contains(view, "Endless") {
		t.Errorf("View() missing endless row:\n%s", view)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.boardCursor != 0 {
		t.Errorf("boardCursor = %d after wrapping, expected 0", m.boardCursor)
	}
}

func TestScoreboardSelectBoard(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	m.SelectBoard("highway_endless", "endless")
	if got := m.boards[m.boardCursor].SongID; got != "endless" {
		t.Errorf("selected %q, expected endless", got)
	}

	m.SelectBoard("highway", "missing")
	if got := m.boards[m.boardCursor].SongID; got != "endless" {
		t.Errorf("unknown board moved cursor to %q", got)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("View() without a store should show the empty message")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Ode to Joy", 20, "Ode to Joy"},
		{"Twinkle Twinkle Little Star", 8, "Twinkle."},
		{"abc", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.want)
		}
	}
}
