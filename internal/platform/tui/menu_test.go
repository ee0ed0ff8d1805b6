package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	_ "github.com/vovakirdan/tui-rhythm/internal/games/highway"
	"github.com/vovakirdan/tui-rhythm/internal/song"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	picks := make(map[string]bool)
	for _, item := range m.items {
		picks[item.GameID] = item.PicksSong
	}
	if p, ok := picks["highway"]; !ok || !p {
		t.Error("highway should be listed and pick a song")
	}
	if p, ok := picks["highway_endless"]; !ok || p {
		t.Error("highway_endless should be listed without a song picker")
	}
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	selected := next.(MenuModel).Selected()
	if selected == nil || selected.GameID != m.items[0].GameID {
		t.Errorf("Selected() = %+v, expected %s", selected, m.items[0].GameID)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestSongSelect(t *testing.T) {
	catalog := song.Catalog()
	if len(catalog) < 2 {
		t.Skip("need at least two built-in songs")
	}

	m := NewSongSelectModel("highway", nil, 80, 24)
	if !strings.Contains(m.View(), catalog[0].Title) {
		t.Errorf("View() missing %q", catalog[0].Title)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(SongSelectModel).Selected(); got != catalog[1].ID {
		t.Errorf("Selected() = %q, expected %q", got, catalog[1].ID)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(SongSelectModel).WantsBack() {
		t.Error("esc should go back")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, quietLogger(), testConfig())

	// Menu -> song picker
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.view != viewSongs {
		t.Fatalf("view = %d after selecting song mode, expected song picker", s.view)
	}

	// Song picker -> game
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.view != viewGame || s.gameModel == nil || cmd == nil {
		t.Fatalf("view = %d after picking a song, expected game", s.view)
	}

	// Pause, then back to menu
	next, _ = s.Update(runeKey("p"))
	s = next.(SessionModel)
	next, _ = s.Update(s.gameModel.tick())
	s = next.(SessionModel)
	next, _ = s.Update(runeKey("b"))
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Fatalf("view = %d after back, expected menu", s.view)
	}
	if s.lastGameID != "highway" || s.lastSongID == "" {
		t.Errorf("last board = %s/%s, expected highway and a song", s.lastGameID, s.lastSongID)
	}

	// Menu -> scoreboard -> menu
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.view != viewScores {
		t.Fatalf("view = %d after tab, expected scoreboard", s.view)
	}
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Errorf("view = %d after esc, expected menu", s.view)
	}
}
