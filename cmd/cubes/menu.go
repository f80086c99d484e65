package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/platform/tui"
	"github.com/vovakirdan/tui-cubes/internal/records"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start cubes in interactive menu mode.

New game asks for a nickname and the board settings, then starts the game.
The settings are remembered for next time. After a game you return to the
menu. Record table shows the top 10.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Record table
  Q            - Quit

Examples:
  cubes menu
  cubes menu --fps 60
  cubes menu --db ~/.cubes/cubes.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(true)
	defer closeLog()

	store, closeStore := openStore(logger)
	defer closeStore()
	tbl := records.Shared(store, logger)

	cfg := runtimeConfig()
	settings := loadSettings(logger)
	player := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(player, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuRecords:
			goBack, sbErr := tui.RunScoreboard(tbl, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}
			continue

		case tui.MenuNewGame:
		default:
			return
		}

		setup, err := tui.RunSetup(player, settings, cfg.ScreenW)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if setup.Quit {
			return
		}
		if setup.Back {
			continue
		}

		player, settings = setup.Player, setup.Settings
		if err := config.Save(flagConfig, settings); err != nil {
			logger.Warn("could not remember settings", "error", err)
		}

		game := newGame(player, settings, tbl, logger)
		logger.Info("game started", "player", player, "size", settings.GridSize, "colors", settings.ColorsCount)

		goBack, err := tui.Run(game, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !goBack && err == nil {
			return
		}
	}
}
