package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [level]",
	Short: "Show recorded attempts",
	Long: `Display the most recent attempts, on one level or on all of them,
with the best finish and the campaign high score.

Examples:
  supaplex results
  supaplex results 03
  supaplex results 03 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of attempts to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded attempts (and scores when no level is given)")
}

func runResults(_ *cobra.Command, args []string) error {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if _, err := levels.Find(appLevels, levelID); err != nil {
			return err
		}
	}

	store, err := storage.Open(appConfig.Storage.DSN)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearResults(store, levelID)
	}

	entries, err := store.LevelResults(levelID, flagLimit)
	if err != nil {
		return err
	}

	title := "all levels"
	if levelID != "" {
		title = "level " + levelID
	}
	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'supaplex play' to set the first result!")
		return nil
	}

	fmt.Printf("  %-8s  %-9s  %-8s  %-5s  %s\n", "Level", "Status", "Ticks", "Disks", "Date")
	fmt.Printf("  %-8s  %-9s  %-8s  %-5s  %s\n", "-----", "------", "-----", "-----", "----")
	for _, e := range entries {
		fmt.Printf("  %-8s  %-9s  %-8d  %-5d  %s\n",
			e.LevelID, e.Status, e.Ticks, e.RedDisks, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if levelID != "" {
		best, err := store.BestResult(levelID)
		if err == nil && best != nil {
			fmt.Printf("Best: %d ticks\n", best.Ticks)
		}
		return nil
	}
	if high, err := store.HighScore("supaplex"); err == nil && high > 0 {
		fmt.Printf("Campaign high score: %d\n", high)
	}
	return nil
}

// clearResults deletes attempts, and the scores too when clearing everything.
func clearResults(store *storage.Store, levelID string) error {
	if err := store.ClearResults(levelID); err != nil {
		return err
	}
	if levelID == "" {
		for _, gameID := range []string{"supaplex", "supaplex_practice"} {
			if err := store.ClearScores(gameID); err != nil {
				return err
			}
		}
	}
	logger.Info("results cleared", "level", levelID)
	return nil
}
