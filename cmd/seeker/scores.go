package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seeker-ball/internal/platform/tui"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs of a profile, or of every profile with --all.

Examples:
  seeker scores
  seeker scores --profile alice
  seeker scores --all --limit 20
  seeker scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show runs of every profile")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs interactively")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("opening progress database: %w", err)
	}
	defer store.Close()

	profile := profileOrDefault()
	if flagScoresAll {
		profile = ""
	}

	if flagScoresTUI {
		width, height := terminalSize()
		return tui.RunScoreboard(store, profile, width, height)
	}

	runs, err := store.TopRuns(profile, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	title := profile
	if title == "" {
		title = "all profiles"
	}
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'seeker play' to set the first score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-12s  %s\n", "Rank", "Score", "Time", "Bonus", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-8s  %-5d  %-12s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			fmt.Sprintf("%.1fs", r.Elapsed),
			r.Bonuses,
			r.Profile,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	return nil
}
