package main

import (
	"github.com/spf13/cobra"

	"github.com/skdltmxn/binstats/binstats"
	"github.com/skdltmxn/binstats/internal/render"
)

var typesFormat string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List symbol type letters",
	Long: `List the symbol type letters nm reports and what they mean.

Upper case letters are global symbols, lower case letters local ones.`,
	Args: cobra.NoArgs,
	RunE: runTypes,
}

func init() {
	typesCmd.Flags().StringVarP(&typesFormat, "format", "f", "table", "output format (table, json, yaml)")
}

func runTypes(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(typesFormat)
	if err != nil {
		return err
	}
	return render.New(output, render.Options{Format: format}).Types(binstats.Types())
}
