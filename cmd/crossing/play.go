package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/levels"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagStartLevel int
	flagSelect     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bug Crossing",
	Long: `Start a run. Pick a character first, then cross every level.

Controls:
  Arrows/WASD  - Move
  H/?          - Ask for help (teleports you, costs a life)
  Enter/Space  - Choose character
  P            - Pause
  Esc          - Back to character selection
  R            - New run from character selection (after the run ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower bugs, longer effects
  normal - Config values as they are
  hard   - Fewer lives, faster bugs, shorter effects
  fixed  - Bug speeds do not ramp up between levels

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --level 5
  crossing play --levels ./packs --select
  crossing play --config ./my-crossing.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Level pack file or directory")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Start at level N (1-based)")
	playCmd.Flags().BoolVar(&flagSelect, "select", false, "Pick the starting level interactively")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	// Surface config errors before the alternate screen takes over.
	if _, err := config.LoadCrossing(flagConfig); err != nil {
		return err
	}

	lvls, err := loadLevels(flagLevels)
	if err != nil {
		return err
	}
	if flagStartLevel < 0 || flagStartLevel > len(lvls) {
		return fmt.Errorf("--level %d out of range (1-%d)", flagStartLevel, len(lvls))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	start := flagStartLevel
	if flagSelect {
		idx, ok, pickErr := tui.RunLevelPicker(lvls, width, height)
		if pickErr != nil {
			return fmt.Errorf("level picker: %w", pickErr)
		}
		// User quit the picker
		if !ok {
			return nil
		}
		start = idx + 1
	}

	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(flagDifficulty)
	if flagLevels != "" {
		crossing.SetLevels(lvls)
	}
	crossing.SetStartLevel(start)

	game, err := registry.Create(crossing.GameID)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	log.Debug("starting", "levels", len(lvls), "start", start, "difficulty", flagDifficulty)
	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadLevels reads a level pack, or returns the shipped campaign when path is empty.
func loadLevels(path string) ([]crossing.Level, error) {
	if path == "" {
		return crossing.ShippedLevels(), nil
	}
	return levels.NewLoader(path).Load()
}
