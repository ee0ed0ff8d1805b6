// rhythm is a falling-note rhythm game for the terminal.
//
// Usage:
//
//	rhythm list                 - List game modes and built-in songs
//	rhythm play <mode>          - Play a mode (highway or highway_endless)
//	rhythm menu                 - Pick modes and songs interactively
//	rhythm scores <mode>        - Show high scores for a mode
//	rhythm serve                - Start SSH server for remote play
//	rhythm config               - Print the default highway config
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible endless runs
//	--db <path>         - Set database path (default: ~/.rhythm/scores.db)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Log file for play and menu (default: ~/.rhythm/rhythm.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-rhythm/internal/games/highway"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rhythm",
	Short: "Note Highway - a rhythm game in your terminal",
	Long: `Note Highway is a terminal rhythm game. Notes fall down four lanes;
press the lane key while a note crosses the hit window to play it.

Available commands:
  list     - Show game modes and built-in songs
  play     - Play a mode directly
  menu     - Interactive mode and song picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default config

Examples:
  rhythm list
  rhythm play highway --song twinkle
  rhythm play highway_endless --difficulty hard
  rhythm menu
  rhythm serve --ssh :2222
  rhythm scores highway --song ode_to_joy`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rhythm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play and menu (default ~/.rhythm/rhythm.log)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
