package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rhythm/internal/audio"
	"github.com/vovakirdan/tui-rhythm/internal/config"
	"github.com/vovakirdan/tui-rhythm/internal/core"
	"github.com/vovakirdan/tui-rhythm/internal/games/highway"
	"github.com/vovakirdan/tui-rhythm/internal/platform/tui"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/song"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSong       string
	flagSongFile   string
	flagAudio      bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Modes:
  highway          - Play a song chart; ends after the last note
  highway_endless  - Generated notes that speed up; ends after too many misses

Controls:
  D F J K    - Play lanes 1-4 (also 1-4 or the arrow keys)
  P/Esc      - Pause
  B          - Back (when paused or after game over)
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider hit window, more misses allowed
  normal - Defaults
  hard   - Narrower hit window, fewer misses allowed
  fixed  - Endless mode stays at its initial speed

Examples:
  rhythm play highway
  rhythm play highway --song twinkle
  rhythm play highway --song-file ./my-song.yaml
  rhythm play highway_endless --difficulty hard --seed 42
  rhythm play highway --config ./my-highway.yaml --audio=false`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom highway config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagSong, "song", "", "Built-in song to play (see 'rhythm list')")
	playCmd.Flags().StringVar(&flagSongFile, "song-file", "", "Path to a song chart YAML")
	playCmd.Flags().BoolVar(&flagAudio, "audio", true, "Play notes through the speaker")
}

// applyGameFlags validates and applies the config, difficulty and song flags.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadHighway(flagConfig); err != nil {
			return err
		}
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	highway.SetConfigPath(flagConfig)
	highway.SetDifficultyPreset(flagDifficulty)

	if flagSong != "" {
		if _, err := song.Builtin(flagSong); err != nil {
			if errors.Is(err, song.ErrUnknownSong) {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(songIDs(), ", "))
			}
			return err
		}
		highway.SetSongID(flagSong)
	}
	if flagSongFile != "" {
		if _, err := song.LoadFile(flagSongFile); err != nil {
			return err
		}
		highway.SetSongPath(flagSongFile)
	}
	return nil
}

// songIDs lists the built-in song IDs.
func songIDs() []string {
	songs := song.Catalog()
	ids := make([]string, len(songs))
	for i, s := range songs {
		ids[i] = s.ID
	}
	return ids
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openPlayer starts audio output. Failures leave a silent player.
func openPlayer(logger *log.Logger) *audio.Player {
	player := audio.NewPlayer(flagAudio)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return player
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rhythm list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(true)
	defer closeLog()

	cfg := terminalConfig()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// Song mode without a chosen song shows the song picker first
	if gameID == "highway" && flagSong == "" && flagSongFile == "" {
		songID, _, err := tui.RunSongSelector(gameID, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if songID == "" {
			return
		}
		highway.SetSongID(songID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	player := openPlayer(logger)
	defer player.Close()

	logger.Info("starting game", "game", gameID, "audio", player.Enabled())
	if _, err := tui.Run(game, store, player, logger, cfg); err != nil {
		logger.Error("game crashed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
