package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/binstats/internal/wildcard"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <name>...",
	Short: "Test a name pattern",
	Long: `Test which names a --pattern value selects.

A pattern containing *, ? or # has to match the whole name; any other
pattern selects names that contain it.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	mode := "substring"
	if wildcard.HasWildcards(pattern) {
		mode = "glob"
	}

	for _, name := range args[1:] {
		result := "no match"
		if wildcard.MatchName(name, pattern) {
			result = "match"
		}
		fmt.Fprintf(output, "%-8s %-9s %s\n", result, mode, name)
	}
	return nil
}
