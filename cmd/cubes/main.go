// cubes is a terminal tile-matching puzzle: click groups of same-colored
// cubes to remove them, let the rest fall and collect points.
//
// Usage:
//
//	cubes                  - Start the menu (same as 'cubes menu')
//	cubes menu             - Nickname, settings form, record table
//	cubes play             - Play a game straight away
//	cubes autoplay         - Play a board out headless and print it
//	cubes scores           - Print the record table
//	cubes presets          - List settings presets
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Settings YAML (default: ~/.cubes/configs/cubes.yaml)
//	--records <path>    - Record table file (default: ~/.cubes/record_table.txt)
//	--db <path>         - Keep the record table in SQLite instead
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Log file used while the TUI runs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cubes/internal/config"
	"github.com/vovakirdan/tui-cubes/internal/core"
	"github.com/vovakirdan/tui-cubes/internal/records"
	"github.com/vovakirdan/tui-cubes/internal/storage"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagConfig      string
	flagRecordsPath string
	flagDBPath      string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubes",
	Short: "Cubes - remove groups of same-colored cubes in your terminal",
	Long: `Cubes is a tile-matching puzzle for the terminal.

Pick a group of two or more touching cubes of the same color to remove it.
Cubes above fall down, empty columns close up, and the bigger the group the
more points it is worth. The game ends when no group is left.

Available commands:
  menu      - Interactive menu (default)
  play      - Play a game directly
  autoplay  - Let the computer play a board out
  scores    - Print the record table
  presets   - List settings presets

Examples:
  cubes
  cubes play --player alice --size 10 --preset rainbow
  cubes autoplay --seed 42 --size 8
  cubes scores --db ~/.cubes/cubes.db`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagRecordsPath, "records", config.DefaultRecordsPath(), "Path to the record table file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Keep the record table in a SQLite database at this path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", config.DefaultLogPath(), "Log file used while the TUI runs")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
}

// newLogger builds the process logger. Interactive commands log to the log
// file so output does not tear the alt screen; headless ones log to stderr.
// The returned close function is never nil.
func newLogger(interactive bool) (*log.Logger, func()) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)

	if interactive {
		w = io.Discard
		if path := config.ExpandHome(flagLogFile); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cubes",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	log.SetDefault(logger)

	return logger, closeFn
}

// openStore picks the SQLite database when --db is set and the flat record
// file otherwise. A database that cannot be opened falls back to the file.
// The returned close function is never nil.
func openStore(logger *log.Logger) (records.Store, func()) {
	if flagDBPath != "" {
		db, err := storage.Open(flagDBPath)
		if err == nil {
			return db, func() { db.Close() }
		}
		logger.Error("could not open database, using record file", "path", flagDBPath, "error", err)
	}
	return records.NewFileStore(flagRecordsPath), func() {}
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// loadSettings reads settings from --config or the default locations.
func loadSettings(logger *log.Logger) config.Settings {
	s, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load settings, using defaults", "error", err)
		return config.DefaultSettings()
	}
	if err := s.Validate(); err != nil {
		logger.Warn("settings out of range, using defaults", "error", err)
		return config.DefaultSettings()
	}
	return s
}
