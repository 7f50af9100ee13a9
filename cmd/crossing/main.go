// crossing is a Frogger-style lane crossing game for the terminal.
//
// Usage:
//
//	crossing play            - Play the shipped campaign or a level pack
//	crossing levels          - Preview and validate levels
//	crossing list            - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Append logs to a file (default: discard)
//	--verbose       - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagVerbose bool

	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Bug Crossing - get across the roads without being eaten",
	Long: `Bug Crossing is a terminal lane crossing game.

Walk from the bottom of the board to the grass at the top while bugs
run along the roads. Water drowns you, items grant short effects and
every level must be cleared in order.

Available commands:
  play     - Play the game
  levels   - Preview and validate levels
  list     - Show all available games

Examples:
  crossing play
  crossing play --difficulty hard --level 3
  crossing play --levels ./my-pack.yaml --select
  crossing levels --levels ./packs --validate`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(listCmd)
}

// setupLogging installs the default logger. Without --log the output is
// discarded so nothing leaks into the alternate screen.
func setupLogging(_ *cobra.Command, _ []string) error {
	var w io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	log.SetDefault(logger)
	crossing.SetLogger(logger)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
