package main

import (
	"github.com/spf13/cobra"
)

var (
	reportFlags listingFlags
	reportLimit int
)

var reportCmd = &cobra.Command{
	Use:   "report [listing]",
	Short: "Show type statistics and the largest symbols",
	Long: `Show the per type statistics followed by the symbol list.

The listing is the output of "nm -S -f bsd -t d <binary>". Without an
argument, or with "-", it is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportFlags.register(reportCmd.Flags())
	reportCmd.Flags().IntVarP(&reportLimit, "limit", "n", -1, "limit number of symbols shown (0 = unlimited, default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	rep, err := readReport(cmd, args, &reportFlags)
	if err != nil {
		return err
	}
	r, err := newRenderer(&reportFlags, reportLimit)
	if err != nil {
		return err
	}
	return r.Report(rep)
}
