package main

import (
	"github.com/spf13/cobra"
)

var (
	symbolsFlags listingFlags
	symbolsLimit int
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [listing]",
	Short: "List symbols, largest first",
	Long: `List the symbols passing the filter, largest first.

Use --pattern to filter by name and --types/--exclude to filter by type.
Use --local=false or --global=false to hide one visibility.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSymbols,
}

func init() {
	symbolsFlags.register(symbolsCmd.Flags())
	symbolsCmd.Flags().IntVarP(&symbolsLimit, "limit", "n", -1, "limit number of symbols shown (0 = unlimited, default from config)")
}

func runSymbols(cmd *cobra.Command, args []string) error {
	rep, err := readReport(cmd, args, &symbolsFlags)
	if err != nil {
		return err
	}
	r, err := newRenderer(&symbolsFlags, symbolsLimit)
	if err != nil {
		return err
	}
	return r.Symbols(rep)
}
