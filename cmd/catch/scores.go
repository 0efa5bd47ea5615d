package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run ledger",
	Long: `Display the best runs recorded in the ledger.

The ledger is in-memory unless --db is given, so this is only useful with
a database file that play or serve wrote to.

Examples:
  catch scores --db ~/.catch/runs.db
  catch scores --db ./runs.db --plain --limit 20
  catch scores --db ./runs.db --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive view")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "No ledger to show: pass --db with the database used by play or serve.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run ledger cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runs")
	fmt.Println()
	fmt.Print(tui.FormatRuns(runs))

	if summary, err := store.Summary(); err == nil && summary.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %s over %s runs\n",
			humanize.Comma(int64(summary.HighScore)),
			humanize.Comma(int64(summary.Runs)))
	}
}
