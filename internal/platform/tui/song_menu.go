package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/song"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

// SongSelectModel lets users choose a built-in song for song mode.
type SongSelectModel struct {
	gameID    string
	songs     []song.Song
	best      []int
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  string
	quitting  bool
	back      bool
}

// NewSongSelectModel creates a song picker for the given mode. Stored best
// scores are shown when store is non-nil.
func NewSongSelectModel(gameID string, store *storage.Store, width, height int) SongSelectModel {
	songs := song.Catalog()
	best := make([]int, len(songs))
	if store != nil {
		for i, s := range songs {
			if score, err := store.HighScore(gameID, s.ID); err == nil {
				best[i] = score
			}
		}
	}

	return SongSelectModel{
		gameID:    gameID,
		songs:     songs,
		best:      best,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SongSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SongSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SongSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.songs)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.songs) > 0 {
			m.selected = m.songs[m.cursor].ID
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the song list.
func (m SongSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT SONG", m.width))
	b.WriteString("\n\n")

	if len(m.songs) == 0 {
		b.WriteString(centerText("No songs available.", m.width))
		b.WriteString("\n")
	}

	for i, s := range m.songs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-24s %3.0f BPM  %2d notes", cursor, songLabel(s), s.BPM, s.PlayableCount())
		if m.best[i] > 0 {
			line += fmt.Sprintf("  best %d", m.best[i])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// songLabel returns "Title (Artist)", or just the title when the artist is unknown.
func songLabel(s song.Song) string {
	title := s.Title
	if title == "" {
		title = s.ID
	}
	if s.Artist == "" {
		return title
	}
	return fmt.Sprintf("%s (%s)", title, s.Artist)
}

// Selected returns the chosen song ID, or "" if none.
func (m SongSelectModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m SongSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SongSelectModel) WantsBack() bool {
	return m.back
}

// RunSongSelector runs the song picker and returns the chosen song ID.
// An empty ID means the user went back or quit.
func RunSongSelector(gameID string, store *storage.Store, cfg core.RuntimeConfig) (songID string, quit bool, err error) {
	model := NewSongSelectModel(gameID, store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(SongSelectModel)
	if !ok {
		return "", true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
