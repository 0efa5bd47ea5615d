package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var (
	flagRecord string
	flagPlayer string
	flagQuiet  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  Enter      - Start / play again
  P          - Pause
  M/Esc      - Back to menu (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, slower objects, sparser spawns
  normal - Values from the config file
  hard   - Fewer lives, faster objects, denser spawns

Examples:
  catch play
  catch play --difficulty hard
  catch play --seed 42 --record run.catch
  catch play --config ./my-catch.yaml --db ~/.catch/runs.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of each finished run (run 2 goes to FILE-2.ext, and so on)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the ledger (default: $USER)")
	playCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Disable terminal bell cues")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns stdout, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runtimeCfg := core.DefaultConfig()
	runtimeCfg.TickRate = flagFPS
	runtimeCfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtimeCfg.ScreenW = w
		runtimeCfg.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run ledger: %v\n", err)
		os.Exit(1)
	}
	ledger, err := storage.NewLedger(store, logger.WithPrefix("storage"))
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	var bell io.Writer = os.Stderr
	if flagQuiet {
		bell = nil
	}

	runErr := tui.Run(tui.Options{
		Config:    gameCfg,
		Runtime:   runtimeCfg,
		HighScore: ledger,
		Player:    player,
		Bell:      bell,
		Record:    flagRecord,
		Logger:    logger,
	})

	// Close store before potential exit
	store.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
