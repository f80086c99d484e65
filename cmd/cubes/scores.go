package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cubes/internal/records"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the record table",
	Long: `Display the top 10 records.

Examples:
  cubes scores
  cubes scores --records ./record_table.txt
  cubes scores --db ~/.cubes/cubes.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	store, closeStore := openStore(logger)
	defer closeStore()

	tbl := records.Load(store, logger)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Record Table")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-4s  %-20s  %s\n", "Rank", "Name", "Score")
	fmt.Fprintf(out, "  %-4s  %-20s  %s\n", "----", "----", "-----")
	for i, r := range tbl.Entries() {
		fmt.Fprintf(out, "  %-4d  %-20s  %d\n", i+1, r.Name, r.Score)
	}
}
