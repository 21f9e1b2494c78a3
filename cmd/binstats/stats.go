package main

import (
	"github.com/spf13/cobra"
)

var statsFlags listingFlags

var statsCmd = &cobra.Command{
	Use:   "stats [listing]",
	Short: "Show size and symbol count per symbol type",
	Long: `Show the size and the number of symbols per symbol type.

The first row is the total over all symbols passing the filter. Percentages
are relative to that total.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsFlags.register(statsCmd.Flags())
}

func runStats(cmd *cobra.Command, args []string) error {
	rep, err := readReport(cmd, args, &statsFlags)
	if err != nil {
		return err
	}
	r, err := newRenderer(&statsFlags, -1)
	if err != nil {
		return err
	}
	return r.Stats(rep)
}
