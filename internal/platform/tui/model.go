package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rhythm/internal/audio"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game. It owns the frame
// clock, forwards note cues to the audio player and records the score once
// per finished run.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     *audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone programs exit when the player goes back
	scoreSaved bool
	loop       uint64 // Ticks from other loops are dropped
}

// NewGameModel creates a model for the given game. The store, player and
// logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, player *audio.Player, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		player:     player,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		loop:       nextLoopID(),
	}
}

// Init starts the game and the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.seedHighScore()
	return tickCmd(m.config.TickRate, m.loop)
}

// seedHighScore shows the stored best score for the game and song.
func (m GameModel) seedHighScore() {
	seeder, ok := m.game.(registry.HighScoreSeeder)
	if !ok || m.store == nil {
		return
	}
	gameID, songID := m.scoreKey()
	best, err := m.store.HighScore(gameID, songID)
	if err != nil {
		m.logger.Warn("cannot load high score", "game", gameID, "song", songID, "error", err)
		return
	}
	seeder.SetHighScore(best)
}

// scoreKey returns the game and song a score is stored under.
func (m GameModel) scoreKey() (gameID, songID string) {
	gameID = m.game.ID()
	if sg, ok := m.game.(registry.SongGame); ok {
		songID = sg.SongID()
	}
	return gameID, songID
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey records the key for the next frame. Quit, screenshot and back are
// handled immediately.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.quitOnBack {
				return m, tea.Quit
			}
		}
		return m, nil
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize resizes the screen. The run keeps going; the game lays itself
// out against the new size on the next render.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "game", m.game.ID())
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.playCues()

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.loop)
}

// playCues drains the game's note cues. Cues are drained even without a
// player so they never pile up.
func (m GameModel) playCues() {
	src, ok := m.game.(registry.CueSource)
	if !ok {
		return
	}
	cues := src.DrainCues()
	if len(cues) == 0 || !m.player.Enabled() {
		return
	}
	if err := m.player.Play(cues...); err != nil {
		m.logger.Debug("cannot play note", "error", err)
	}
}

// saveScore records the finished run. Empty runs are not stored.
func (m GameModel) saveScore() {
	gameID, songID := m.scoreKey()
	st := m.gameState
	m.logger.Info("game over",
		"game", gameID,
		"song", songID,
		"score", st.Score,
		"max_streak", st.MaxStreak,
		"accuracy", fmt.Sprintf("%.1f%%", st.Accuracy*100),
	)

	if m.store == nil || st.Score <= 0 {
		return
	}
	id, err := m.store.SaveScore(storage.Result{
		GameID:    gameID,
		SongID:    songID,
		Score:     st.Score,
		MaxStreak: st.MaxStreak,
		Accuracy:  st.Accuracy,
	})
	if err != nil {
		m.logger.Error("cannot save score", "game", gameID, "error", err)
		return
	}
	m.logger.Info("score saved", "id", id, "game", gameID, "song", songID, "score", st.Score)
}

// saveScreenshot saves the current screen to ~/.rhythm/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".rhythm", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in its own Bubble Tea program.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, player *audio.Player, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, player, logger, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
