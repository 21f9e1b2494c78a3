package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/skdltmxn/binstats/internal/config"
)

var (
	outputFile string
	configFile string
	verbose    bool
	output     io.Writer
	outputFd   *os.File
	logger     log.Logger = log.NewNopLogger()
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "binstats",
	Short: "Binary size statistics from nm symbol listings",
	Long: `binstats summarizes where the bytes of a binary go.

It reads the output of
  nm -S -f bsd -t d <binary>
from a file or from stdin, demangles the symbol names and prints the size
and number of symbols per symbol type together with the symbols themselves,
largest first.

Symbol names can be filtered with a pattern:
  *  matches any character 0 to unlimited times
  ?  matches any character exactly once
  #  matches any digit exactly once
A pattern without any of these characters matches names containing it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(cmd.ErrOrStderr(), verbose)

		cfg = config.Default()
		if configFile != "" {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
			level.Debug(logger).Log("msg", "loaded config", "path", configFile)
		}

		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output, outputFd = f, f
		} else {
			output = cmd.OutOrStdout()
		}
		return nil
	},
}

func init() {
	cobra.OnFinalize(closeOutput)

	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "read default settings from a YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(demangleCmd)
}

// closeOutput closes the file opened for --output. Finalizers run whether or
// not the command failed.
func closeOutput() {
	if outputFd == nil {
		return
	}
	if err := outputFd.Close(); err != nil {
		level.Warn(logger).Log("msg", "failed to close output file", "path", outputFile, "err", err)
	}
	outputFd = nil
}

func newLogger(w io.Writer, verbose bool) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	if verbose {
		return level.NewFilter(l, level.AllowDebug())
	}
	return level.NewFilter(l, level.AllowInfo())
}
