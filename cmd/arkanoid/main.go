// arkanoid is a terminal brick breaker: bounce the ball off the paddle and
// clear every brick before running out of lives.
//
// Usage:
//
//	arkanoid play [game]     - Play (arkanoid or arkanoid_hard)
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid scores [game]   - Show the best runs
//	arkanoid list            - List game variants
//	arkanoid config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.arcade/arkanoid.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logger is configured before any command runs.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// fullscreenAnnotation marks commands that own the terminal while running.
// Their logs go to --log-file only.
const fullscreenAnnotation = "fullscreen"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a brick breaker for the terminal. Steer the paddle, keep
the ball in play and clear all bricks; some take two or three hits.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View the best runs
  list     - Show all game variants
  config   - Print the default configuration

Examples:
  arkanoid play
  arkanoid play arkanoid_hard
  arkanoid play --difficulty easy --config ./my-arkanoid.yaml
  arkanoid serve --ssh :2222
  arkanoid scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/arkanoid.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the global logger from the log flags.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	var out io.Writer = os.Stderr
	if cmd.Annotations[fullscreenAnnotation] == "true" {
		out = io.Discard
	}
	if flagLogFile != "" {
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = logFile
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
		Level:           level,
	})
	return nil
}
