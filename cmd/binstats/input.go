package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/skdltmxn/binstats/binstats"
	"github.com/skdltmxn/binstats/internal/render"
)

// listingFlags are shared by every command that reads an nm listing.
// Values only override the config file when set on the command line.
type listingFlags struct {
	pattern  string
	types    string
	exclude  string
	unknown  bool
	local    bool
	global   bool
	demangle string
	radix    int
	format   string
	human    bool
	width    int
}

func (lf *listingFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&lf.pattern, "pattern", "p", "", "filter symbol names (* any characters, ? one character, # one digit)")
	fs.StringVarP(&lf.types, "types", "t", "", "only include these type letters, case insensitive (? for unknown)")
	fs.StringVarP(&lf.exclude, "exclude", "x", "", "exclude these type letters, case insensitive (? for unknown)")
	fs.BoolVar(&lf.unknown, "unknown", true, "include symbols of unknown type")
	fs.BoolVar(&lf.local, "local", true, "include local symbols (lower case types)")
	fs.BoolVar(&lf.global, "global", true, "include global symbols (upper case types)")
	fs.StringVarP(&lf.demangle, "demangle", "d", "full", "demangling style (full, templates, simplified, none)")
	fs.IntVar(&lf.radix, "radix", 10, "radix of the address and size columns (8, 10, 16)")
	fs.StringVarP(&lf.format, "format", "f", "table", "output format (table, json, yaml)")
	fs.BoolVarP(&lf.human, "human", "H", false, "print sizes in human readable units")
	fs.IntVarP(&lf.width, "width", "w", 0, "truncate symbol names to this width (0 = terminal width, -1 = never)")
}

// apply merges the flags the user set into the loaded config.
func (lf *listingFlags) apply(fs *pflag.FlagSet) {
	if fs.Changed("pattern") {
		cfg.Pattern = lf.pattern
	}
	if fs.Changed("types") {
		cfg.Types = lf.types
	}
	if fs.Changed("exclude") {
		cfg.Exclude = lf.exclude
	}
	if fs.Changed("unknown") {
		cfg.Unknown = lf.unknown
	}
	if fs.Changed("local") {
		cfg.Local = lf.local
	}
	if fs.Changed("global") {
		cfg.Global = lf.global
	}
	if fs.Changed("demangle") {
		cfg.Demangle = lf.demangle
	}
	if fs.Changed("radix") {
		cfg.Radix = lf.radix
	}
	if fs.Changed("format") {
		cfg.Format = lf.format
	}
	if fs.Changed("human") {
		cfg.Human = lf.human
	}
}

// readReport reads the listing named by args, or stdin, and aggregates it
// with the configured filter.
func readReport(cmd *cobra.Command, args []string, lf *listingFlags) (*binstats.Report, error) {
	lf.apply(cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	table, err := readTable(cmd, args)
	if err != nil {
		return nil, err
	}

	filter, err := cfg.Filter()
	if err != nil {
		return nil, err
	}
	rep := binstats.Aggregate(table, filter)
	level.Debug(logger).Log("msg", "aggregated", "pattern", filter.Pattern, "matched", len(rep.Symbols), "total_size", rep.Total.Size)
	return rep, nil
}

func readTable(cmd *cobra.Command, args []string) (*binstats.SymbolTable, error) {
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	var r io.Reader
	if source == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open listing: %w", err)
		}
		defer f.Close()
		r = f
	}

	d, err := cfg.Demangler()
	if err != nil {
		return nil, err
	}

	table, err := binstats.Read(r,
		binstats.WithDemangler(d),
		binstats.WithRadix(cfg.Radix),
		binstats.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	if err := table.Err(source); err != nil {
		level.Warn(logger).Log("msg", "failed to read symbols", "source", source, "first_line", table.FirstLine())
		return nil, err
	}
	if table.Skipped() > 0 {
		level.Info(logger).Log("msg", "skipped malformed lines", "source", source, "count", table.Skipped())
	}
	return table, nil
}

// newRenderer builds a renderer for the configured format. Names are cut to
// the terminal width when writing to a terminal.
func newRenderer(lf *listingFlags, limit int) (*render.Renderer, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	if limit >= 0 {
		opts.Limit = limit
	}

	switch {
	case lf.width > 0:
		opts.NameWidth = lf.width
	case lf.width == 0:
		opts.NameWidth = terminalNameWidth(output)
	}
	return render.New(output, opts), nil
}

// nameColumnReserve is room left for the type and size columns.
const nameColumnReserve = 48

func terminalNameWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return max(width-nameColumnReserve, 20)
}
