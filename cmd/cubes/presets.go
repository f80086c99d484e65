package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List settings presets",
	Long: `Display all settings presets usable with --preset.

Examples:
  cubes presets`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Presets:")
	fmt.Fprintln(out)

	for _, p := range config.Presets() {
		fmt.Fprintf(out, "  %-10s  %s\n", p, p.Description())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use 'cubes play --preset <name>' to play with a preset.")
}
