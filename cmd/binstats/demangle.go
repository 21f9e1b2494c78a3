package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/binstats/internal/demangle"
	"github.com/skdltmxn/binstats/internal/nm"
)

var demangleStyle string

var demangleCmd = &cobra.Command{
	Use:   "demangle <name>...",
	Short: "Normalize raw symbol names",
	Long: `Normalize raw symbol names the way listings are processed.

Compiler suffixes such as .constprop.0 and prefixes up to the last '.' or '$'
are split off, the rest is demangled and the parts are joined again.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDemangle,
}

func init() {
	demangleCmd.Flags().StringVarP(&demangleStyle, "demangle", "d", "full", "demangling style (full, templates, simplified, none)")
}

func runDemangle(cmd *cobra.Command, args []string) error {
	name := cfg.Demangle
	if cmd.Flags().Changed("demangle") {
		name = demangleStyle
	}
	style, err := demangle.ParseStyle(name)
	if err != nil {
		return err
	}
	p := nm.NewParser(demangle.New(style))

	for _, name := range args {
		fmt.Fprintf(output, "%s\n", p.NormalizeName(name))
	}
	return nil
}
