package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/platform/tui"
	"github.com/vovakirdan/tui-rhythm/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and song picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. Song mode asks for a
song next. After a game, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Esc/B        - Back
  Q            - Quit

Examples:
  rhythm menu
  rhythm menu --fps 30 --difficulty easy
  rhythm menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom highway config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagAudio, "audio", true, "Play notes through the speaker")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger(true)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := openPlayer(logger)
	defer player.Close()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if menuResult.PicksSong {
			songID, quit, selErr := tui.RunSongSelector(gameID, store, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if quit {
				return
			}
			if songID == "" {
				continue
			}
			if sel, ok := game.(registry.SongSelector); ok {
				sel.SelectSong(songID)
			}
		}

		cfg.Seed = time.Now().UnixNano()
		if flagSeed != 0 {
			cfg.Seed = flagSeed
		}

		logger.Info("starting game", "game", gameID)
		backToMenu, err := tui.Run(game, store, player, logger, cfg)
		if err != nil {
			logger.Error("game crashed", "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			return
		}
	}
}
