package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/song"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

var (
	flagScoresSong  string
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode.

Song mode keeps a separate table per song. Without --song every song that
has scores is shown.

Examples:
  rhythm scores highway
  rhythm scores highway --song twinkle --all
  rhythm scores highway_endless
  rhythm scores highway --song twinkle --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresSong, "song", "", "Only show scores for this song")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected scores")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'rhythm list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID, flagScoresSong); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", scoresLabel(title, flagScoresSong))
		return
	}

	songIDs := []string{flagScoresSong}
	if flagScoresSong == "" {
		songIDs, err = store.PlayedSongs(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}

	if len(songIDs) == 0 {
		fmt.Printf("High Scores - %s\n\n", title)
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rhythm play %s' to set the first high score!\n", gameID)
		return
	}

	for i, songID := range songIDs {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, gameID, songID, title); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  |  Average: %.0f  |  Best streak: %d  |  Average accuracy: %.1f%%\n",
			stats.GamesCount, stats.AvgScore, stats.BestStreak, stats.AvgAccuracy*100)
	}
}

// printScores prints one song's table.
func printScores(store *storage.Store, gameID, songID, title string) error {
	var scores []storage.ScoreEntry
	var err error
	if flagScoresAll {
		scores, err = store.AllScores(gameID, songID)
	} else {
		scores, err = store.TopScores(gameID, songID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", scoresLabel(title, songID))

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "Rank", "Score", "Streak", "Accuracy", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %s\n", "----", "-----", "------", "--------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %-8s  %s\n",
			i+1, entry.Score, entry.MaxStreak,
			fmt.Sprintf("%.1f%%", entry.Accuracy*100),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	highScore, err := store.HighScore(gameID, songID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

// scoresLabel names a score table: the mode title plus the song title when
// the song is known.
func scoresLabel(title, songID string) string {
	switch songID {
	case "", "endless":
		return title
	}
	if s, err := song.Builtin(songID); err == nil && s.Title != "" {
		return fmt.Sprintf("%s / %s", title, s.Title)
	}
	return fmt.Sprintf("%s / %s", title, songID)
}
