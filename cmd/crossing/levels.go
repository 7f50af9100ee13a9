package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var flagValidate bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Preview and validate levels",
	Long: `Prints every level with a board preview and the bug speed range it
is played at. Use --levels to inspect a pack instead of the shipped
campaign, and --validate to only check it.

Legend:
  ~ water   " grass   . stone   = road
  letters mark items (h heart, s star, k key, r rock, b/g/o gems)

Examples:
  crossing levels
  crossing levels --difficulty hard
  crossing levels --levels ./packs --validate`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevels, "levels", "", "Level pack file or directory")
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	levelsCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only validate, exit non-zero on errors")
}

var (
	headerColor  = color.New(color.FgYellow, color.Bold)
	waterColor   = color.New(color.FgBlue)
	grassColor   = color.New(color.FgGreen)
	stoneColor   = color.New(color.FgWhite)
	roadColor    = color.New(color.FgHiBlack)
	itemColor    = color.New(color.FgHiMagenta, color.Bold)
	warningColor = color.New(color.FgYellow)
)

func runLevels(_ *cobra.Command, _ []string) error {
	lvls, err := loadLevels(flagLevels)
	if err != nil {
		return err
	}
	if _, err := crossing.NewGame(lvls, crossing.DefaultOptions()); err != nil {
		return err
	}

	warnings := 0
	for i, lvl := range lvls {
		for _, w := range levelWarnings(lvl) {
			warningColor.Printf("warning: level %d (%s): %s\n", i+1, lvl.ID, w)
			warnings++
		}
	}

	if flagValidate {
		color.Green("ok: %d levels, %d warnings", len(lvls), warnings)
		return nil
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyCrossingPreset(&cfg, preset)

	for i, lvl := range lvls {
		lo, hi := cfg.SpeedBoundsAt(i)
		fmt.Println()
		headerColor.Printf("%2d  %s", i+1, lvl.Name)
		fmt.Printf("  [%s]  %dx%d  %d roads  speed %d-%d\n", lvl.ID, lvl.Width, lvl.Height, len(lvl.Roads), lo, hi)
		printPreview(lvl)
	}
	return nil
}

// levelWarnings lists problems that do not make a level invalid but make it
// unwinnable or unfair.
func levelWarnings(lvl crossing.Level) []string {
	var out []string

	grass := false
	for col := 0; col < lvl.Width; col++ {
		if lvl.Blocks[col] == crossing.Grass {
			grass = true
			break
		}
	}
	if !grass {
		out = append(out, "no grass on the top row")
	}

	if lvl.Blocks[(lvl.Height-1)*lvl.Width] == crossing.Water {
		out = append(out, "the spawn cell is water")
	}
	return out
}

func printPreview(lvl crossing.Level) {
	roads := make(map[int]bool, len(lvl.Roads))
	for _, r := range lvl.Roads {
		roads[r] = true
	}

	for row := 0; row < lvl.Height; row++ {
		var sb strings.Builder
		sb.WriteString("    ")
		for col := 0; col < lvl.Width; col++ {
			i := row*lvl.Width + col
			if lvl.Items != nil && lvl.Items[i] != crossing.None {
				sb.WriteString(itemColor.Sprint(string(rune(lvl.Items[i]))))
				continue
			}
			sb.WriteString(previewCell(lvl.Blocks[i], roads[row]))
		}
		fmt.Println(sb.String())
	}
}

func previewCell(t crossing.Terrain, road bool) string {
	switch {
	case t == crossing.Water:
		return waterColor.Sprint("~")
	case road:
		return roadColor.Sprint("=")
	case t == crossing.Grass:
		return grassColor.Sprint("\"")
	default:
		return stoneColor.Sprint(".")
	}
}
