package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rhythm/internal/registry"
	"github.com/vovakirdan/tui-rhythm/internal/song"
	"github.com/vovakirdan/tui-rhythm/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and built-in songs",
	Long:  `Shows the registered game modes, how often each was played, and the built-in songs.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	// Play counts are optional; a missing database just hides them
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Played")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "------")
	for _, g := range games {
		played := 0
		if gs, ok := stats[g.ID]; ok {
			played = gs.GamesCount
		}
		fmt.Printf("  %-*s  %-24s  %d\n", maxIDLen, g.ID, g.Title, played)
	}

	songs := song.Catalog()
	fmt.Println()
	fmt.Println("Built-in songs:")
	fmt.Println()

	maxSongLen := 2
	for _, s := range songs {
		maxSongLen = max(maxSongLen, len(s.ID))
	}
	fmt.Printf("  %-*s  %-32s  %5s  %s\n", maxSongLen, "ID", "Title", "BPM", "Notes")
	fmt.Printf("  %-*s  %-32s  %5s  %s\n", maxSongLen, "--", "-----", "---", "-----")
	for _, s := range songs {
		fmt.Printf("  %-*s  %-32s  %5.0f  %d\n", maxSongLen, s.ID, s.Title, s.BPM, s.PlayableCount())
	}

	fmt.Println()
	fmt.Println("Run 'rhythm play highway --song <id>' to play a song.")
}
