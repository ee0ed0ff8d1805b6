// Package highway implements the note highway: notes fall down four lanes and
// the player presses the lane key while a note crosses the hit window.
// All scoring goes through the rhythm reducer; this package only decides
// which action to apply on each step.
package highway

import (
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/rhythm"
	"github.com/vovakirdan/tui-rhythm/internal/song"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeSong    GameMode = iota // Play a chart; ends when the last note is resolved
	ModeEndless                 // Generated notes; ends after max_misses misses
)

// flashFrames is how long a lane key stays lit after a press.
const flashFrames = 6

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// Song selection set via CLI or menu.
var (
	songID   string
	songPath string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetSongID selects a built-in song for song mode.
func SetSongID(id string) {
	songID = id
	songPath = ""
}

// SetSongPath selects a chart file for song mode. It takes precedence over
// SetSongID.
func SetSongPath(path string) {
	songPath = path
}

// SelectedSongID returns the built-in song that song mode will play.
func SelectedSongID() string {
	if songID == "" {
		return song.DefaultID
	}
	return songID
}

// Game implements the note highway.
type Game struct {
	mode GameMode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.HighwayConfig
	rules      rhythm.Rules
	difficulty *config.DifficultyManager

	// Note sources
	songSel   string // Per-instance song choice, set from the menu
	song      song.Song
	scheduler *song.Scheduler
	generator *song.Generator
	pending   []song.Cue

	// Reducer state
	state     rhythm.State
	step      int     // Reducer actions applied
	owed      float64 // Steps owed to the wall clock
	frames    uint64
	highScore int

	stats     Stats
	cues      []rhythm.NoteProps // Notes to sound since the last DrainCues
	preview   *rhythm.NoteProps  // Last background note, shown until it ends
	previewAt int
	flash     [4]int
	flashOK   [4]bool
	paused    bool

	// Test hooks
	cfgOverride  *config.HighwayConfig
	songOverride *song.Song
}

// New creates a new highway game in song mode.
func New() *Game {
	return &Game{mode: ModeSong}
}

// NewEndless creates a new highway game in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("highway", func() registry.Game {
		return New()
	})
	registry.Register("highway_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "highway_endless"
	}
	return "highway"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Note Highway (Endless)"
	}
	return "Note Highway"
}

// SongID returns the chart being played, or "endless".
func (g *Game) SongID() string {
	if g.mode == ModeEndless {
		return "endless"
	}
	return g.song.ID
}

// SongTitle returns the display title of the chart being played.
func (g *Game) SongTitle() string {
	if g.mode == ModeEndless {
		return "Endless"
	}
	if g.song.Title != "" {
		return g.song.Title
	}
	return g.song.ID
}

// Reset initializes or restarts the game. The best score survives restarts.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.loadConfig()

	g.rules = g.cfg.ToRules()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.scheduler = nil
	g.generator = nil
	switch g.mode {
	case ModeEndless:
		g.generator = song.NewGenerator(cfg.Seed, g.rules, g.cfg, g.difficulty)
	default:
		g.song = g.loadSong()
		g.scheduler = song.NewScheduler(g.song, g.rules, g.cfg.Timing)
	}

	g.highScore = max(g.highScore, g.state.HighScore)
	g.state = rhythm.NewState(g.highScore)
	g.pending = nil
	g.step = 0
	g.owed = 0
	g.frames = 0
	g.stats = Stats{}
	g.cues = nil
	g.preview = nil
	g.flash = [4]int{}
	g.paused = false
}

func (g *Game) loadConfig() {
	if g.cfgOverride != nil {
		g.cfg = *g.cfgOverride
		return
	}
	cfg, err := config.LoadHighway(configPath)
	if err != nil {
		cfg = config.DefaultHighwayConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHighwayPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
}

// loadSong resolves the selected chart, falling back to the default song.
// The CLI validates the selection before a game starts.
func (g *Game) loadSong() song.Song {
	if g.songOverride != nil {
		return *g.songOverride
	}
	if g.songSel != "" {
		if s, err := song.Builtin(g.songSel); err == nil {
			return s
		}
	}
	if songPath != "" {
		if s, err := song.LoadFile(songPath); err == nil {
			return s
		}
	}
	if s, err := song.Builtin(SelectedSongID()); err == nil {
		return s
	}
	s, _ := song.Builtin(song.DefaultID)
	return s
}

// SelectSong picks the built-in song for this instance only. It overrides
// SetSongID and SetSongPath and applies on the next Reset.
func (g *Game) SelectSong(id string) {
	g.songSel = id
}

// SetHighScore seeds the best score, typically from storage.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
	if score > g.state.HighScore {
		g.state.HighScore = score
	}
}

// Step advances the game by one frame. Lane presses are applied first, then
// due notes are spawned, then the remaining owed steps are plain ticks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.GameEnd {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	for i := range g.flash {
		if g.flash[i] > 0 {
			g.flash[i]--
		}
	}

	before := g.step
	g.owed += g.stepsPerFrame()

	for _, lane := range in.Lanes() {
		if lane >= g.rules.Lanes {
			continue
		}
		g.apply(rhythm.Click{Column: rhythm.Column(lane)})
		g.flash[lane] = flashFrames
		g.flashOK[lane] = g.state.PlayNote != nil && !g.state.PlayNote.IsRandom()
		if g.checkEnd() {
			break
		}
	}

	for g.owed >= 1 && !g.state.GameEnd {
		g.pending = append(g.pending, g.due()...)
		if len(g.pending) > 0 {
			c := g.pending[0]
			g.pending = g.pending[1:]
			g.apply(c.Action())
		} else {
			g.apply(rhythm.Tick{})
		}
		g.checkEnd()
	}

	if g.preview != nil && g.previewDone() {
		g.preview = nil
	}

	return core.StepResult{State: g.State(), Steps: g.step - before}
}

// stepsPerFrame converts one platform frame into reducer steps. In endless
// mode the fall speed follows the difficulty curve.
func (g *Game) stepsPerFrame() float64 {
	frameMS := 1000 / float64(g.runtime.TickRate)
	interval := float64(g.cfg.Timing.TickIntervalMS)
	if g.mode == ModeEndless {
		interval /= g.difficulty.Speed(g.state.Score, g.step)
	}
	return frameMS / interval
}

func (g *Game) due() []song.Cue {
	if g.generator != nil {
		return g.generator.Due(g.step, g.state.Score)
	}
	return g.scheduler.Due(g.step)
}

// apply runs one reducer action and records what it resolved.
func (g *Game) apply(a rhythm.Action) {
	g.state = rhythm.Reduce(g.rules, g.state, a)
	g.step++
	g.owed--

	if n := g.state.PlayNote; n != nil {
		if n.IsRandom() {
			g.stats.MissClicks++
		} else {
			g.stats.Hits++
		}
		g.cues = append(g.cues, *n)
	}
	g.stats.Misses += len(g.state.Missed(g.rules))
	g.stats.MaxStreak = max(g.stats.MaxStreak, g.state.ConsecutiveNoteCount)

	if n := g.state.BackgroundNote; n != nil {
		g.cues = append(g.cues, *n)
		bg := *n
		g.preview = &bg
		g.previewAt = g.step
	}
}

// checkEnd issues EndGame once the run is over.
func (g *Game) checkEnd() bool {
	if g.state.GameEnd {
		return true
	}
	var over bool
	switch g.mode {
	case ModeEndless:
		over = g.stats.Misses >= g.cfg.Endless.MaxMisses
	default:
		over = g.scheduler.Done() && len(g.pending) == 0 && len(g.state.UserNotes) == 0
	}
	if over {
		// EndGame carries the previous step's notes forward; they were
		// already counted.
		g.state = rhythm.Reduce(g.rules, g.state, rhythm.EndGame{})
		g.step++
	}
	return over
}

// previewDone reports whether the background note has finished sounding.
func (g *Game) previewDone() bool {
	length := g.preview.Duration() * 1000 / float64(g.cfg.Timing.TickIntervalMS)
	return float64(g.step) > float64(g.previewAt)+length
}

// DrainCues returns the notes to sound since the previous call: played notes,
// miss-click feedback notes and background notes.
func (g *Game) DrainCues() []rhythm.NoteProps {
	cues := g.cues
	g.cues = nil
	return cues
}

// Stats returns the run statistics.
func (g *Game) Stats() Stats {
	return g.stats
}

// Reducer returns the current reducer state.
func (g *Game) Reducer() rhythm.State {
	return g.state
}

// Progress returns how far through the song the run is, from 0 to 1.
// Endless mode reports 0.
func (g *Game) Progress() float64 {
	if g.scheduler == nil || g.scheduler.EndTick() <= 0 {
		return 0
	}
	return min(float64(g.step)/float64(g.scheduler.EndTick()), 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: max(g.highScore, g.state.HighScore),
		MaxStreak: g.stats.MaxStreak,
		Accuracy:  g.stats.Accuracy(),
		GameOver:  g.state.GameEnd,
		Paused:    g.paused,
	}
}
