package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/games/cubes"
	"github.com/vovakirdan/tui-cubes/internal/records"
)

var (
	flagLayout string
	flagRecord bool
	flagQuiet  bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Play a board out without the TUI",
	Long: `Generate a board (or load one from a layout file) and let autocomplete
play it out, printing the board after every removal and the final score.

Layout files have one line per row, top row first, with one token per cell:
the color letter (R, G, Y, B, P, A, O), several letters for a multicolor
cube, or '.' for an empty cell.

Examples:
  cubes autoplay --seed 42
  cubes autoplay --size 6 --colors 3 --quiet
  cubes autoplay --layout board.txt --player bot --record`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	addSettingsFlags(autoplayCmd)
	autoplayCmd.Flags().StringVar(&flagLayout, "layout", "", "Start from a layout file instead of a random board")
	autoplayCmd.Flags().BoolVar(&flagRecord, "record", false, "Insert the result into the record table")
	autoplayCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print the final score")
}

func runAutoplay(cmd *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(false)
	defer closeLog()

	s, err := settingsFromFlags(cmd, logger)
	if err != nil {
		return err
	}
	if err := validatePlayer(flagPlayer); err != nil {
		return err
	}

	var opts []cubes.Option
	if flagLayout != "" {
		data, err := os.ReadFile(flagLayout)
		if err != nil {
			return fmt.Errorf("read layout: %w", err)
		}
		field, err := cubes.ParseLayout(string(data))
		if err != nil {
			return fmt.Errorf("layout %s: %w", flagLayout, err)
		}
		opts = append(opts, cubes.WithField(field))
	}

	var tbl *records.Table
	if flagRecord {
		store, closeStore := openStore(logger)
		defer closeStore()
		tbl = records.Shared(store, logger)
	}

	game := newGame(flagPlayer, s, tbl, logger, opts...)
	out := cmd.OutOrStdout()

	if !flagQuiet {
		fmt.Fprintf(out, "Board %dx%d, seed %d\n%s\n", game.Size(), game.Size(), game.Seed(), game.Field().Layout())
	}

	moves := 0
	for {
		before := game.Score()
		if !game.Autocomplete() {
			break
		}
		moves++
		if !flagQuiet {
			fmt.Fprintf(out, "\nMove %d: +%d (score %d)\n%s\n", moves, game.Score()-before, game.Score(), game.Field().Layout())
		}
	}

	fmt.Fprintf(out, "\nFinal score: %d after %d moves, %d cubes left\n", game.Score(), moves, game.Field().Cubes())

	if flagRecord {
		qualifies := tbl.Qualifies(game.Score())
		game.InsertResult()
		game.SaveRecords()
		if qualifies {
			fmt.Fprintln(out, "New record!")
		}
	}
	return nil
}
