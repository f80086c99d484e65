package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/games/cubes"
	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/records"
)

var (
	flagPlayer     string
	flagSize       int
	flagColors     int
	flagMulti      int
	flagMulticubes int
	flagPreset     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game straight away, skipping the menu.

Settings come from the settings file and can be overridden per flag.
A preset is applied before the individual flags.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Remove the group under the cursor
  Mouse            - Hover to preview, click to remove
  X                - Autocomplete the board
  R                - Restart on a new board
  Esc/B            - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Screenshot

Examples:
  cubes play --player alice
  cubes play --size 10 --colors 3
  cubes play --preset prism --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addSettingsFlags(playCmd)
}

// addSettingsFlags registers the player and board settings flags on cmd.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPlayer, "player", "player", "Player name for the record table (no spaces)")
	cmd.Flags().IntVar(&flagSize, "size", 0, "Grid size (cubes per side)")
	cmd.Flags().IntVar(&flagColors, "colors", 0, "Number of colors in play")
	cmd.Flags().IntVar(&flagMulti, "multi", 0, "Colors on each multicolor cube")
	cmd.Flags().IntVar(&flagMulticubes, "multicubes", 0, "Maximum number of multicolor cubes")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Settings preset: easy, normal, hard, rainbow, prism")
}

// settingsFromFlags applies --preset and the explicitly set settings flags on
// top of the loaded settings, then validates the result.
func settingsFromFlags(cmd *cobra.Command, logger *log.Logger) (config.Settings, error) {
	s := loadSettings(logger)

	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return s, err
		}
		if cmd.Flags().Changed("size") {
			s.GridSize = flagSize
		}
		config.ApplyPreset(&s, preset)
	}

	if cmd.Flags().Changed("size") {
		s.GridSize = flagSize
	}
	if cmd.Flags().Changed("colors") {
		s.ColorsCount = flagColors
	}
	if cmd.Flags().Changed("multi") {
		s.MultipleColors = flagMulti
	}
	if cmd.Flags().Changed("multicubes") {
		s.MulticubeCount = flagMulticubes
	}

	return s, s.Validate()
}

// validatePlayer rejects names the record file could not store.
func validatePlayer(name string) error {
	switch {
	case name == "":
		return errors.New("player name is required")
	case strings.ContainsAny(name, " \t\n"):
		return fmt.Errorf("player name %q must not contain spaces", name)
	}
	return nil
}

// newGame creates a game wired to the record table and the logger.
func newGame(player string, s config.Settings, tbl *records.Table, logger *log.Logger, opts ...cubes.Option) *cubes.Game {
	opts = append([]cubes.Option{
		cubes.WithRecords(tbl),
		cubes.WithLogger(logger),
	}, opts...)
	if flagSeed != 0 {
		opts = append(opts, cubes.WithSeed(flagSeed))
	}
	return cubes.New(s.GridSize, player, s, opts...)
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	s, err := settingsFromFlags(cmd, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := validatePlayer(flagPlayer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, closeStore := openStore(logger)
	tbl := records.Shared(store, logger)

	// Remember the last finished game for the summary line
	var (
		finished  bool
		lastScore int
		newRecord bool
	)
	game := newGame(flagPlayer, s, tbl, logger, cubes.OnFinish(func(g *cubes.Game) {
		finished, lastScore, newRecord = true, g.Score(), g.IsNewRecord()
	}))
	logger.Info("game started", "player", flagPlayer, "size", s.GridSize, "colors", s.ColorsCount)

	// Run the game
	_, runErr := tui.Run(game, runtimeConfig(), logger)

	// Close the database before potential exit
	closeStore()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if finished {
		fmt.Fprintf(cmd.OutOrStdout(), "%s scored %d points", flagPlayer, lastScore)
		if newRecord {
			fmt.Fprint(cmd.OutOrStdout(), " - new record!")
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
}
