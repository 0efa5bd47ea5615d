package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Load a recording written by 'catch play --record' and run it again
without a display. The final stats are printed and compared with the
recorded outcome.

Examples:
  catch replay run.catch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap, err := replay.Replay(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Player: %s\n", rec.Player)
	fmt.Printf("Seed:   %d\n", rec.Seed)
	fmt.Printf("Ticks:  %s\n", humanize.Comma(int64(snap.Tick)))
	fmt.Printf("Score:  %s\n", humanize.Comma(int64(snap.Score)))
	fmt.Printf("Level:  %d\n", snap.Level)
	fmt.Printf("Lives:  %d\n", snap.Lives)
	fmt.Println()

	err = replay.Verify(rec)
	switch {
	case err == nil:
		fmt.Println("Replay matches the recorded outcome.")
	case errors.Is(err, replay.ErrMismatch):
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
