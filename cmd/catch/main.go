// catch is a terminal arcade game: move the basket and catch what falls.
//
// Usage:
//
//	catch play            - Play in this terminal
//	catch serve           - Host the game over SSH
//	catch scores          - Show the run ledger
//	catch replay <file>   - Re-simulate a recorded run
//	catch config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--db <path>           - Run ledger database (default: in-memory)
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch",
	Short: "Catch - a falling objects arcade game for your terminal",
	Long: `Catch is a terminal arcade game. Move the basket left and right and
catch everything that falls. Every catch scores a point, every miss costs
a life, and the game speeds up as your score grows.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the run ledger
  replay   - Re-simulate a recorded run
  config   - Print the effective config

Examples:
  catch play
  catch play --difficulty hard --record run.catch
  catch serve --ssh :2222
  catch scores --db ~/.catch/runs.db
  catch replay run.catch`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run ledger database (empty = in-memory)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the root logger. Without --log-file, logs go to
// fallback; the returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "catch",
	})
	return logger, closer, nil
}

// loadGameConfig resolves the config file and applies the difficulty preset.
func loadGameConfig() (config.CatchConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CatchConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.CatchConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.CatchConfig{}, err
	}
	return cfg, nil
}
