// Package render writes aggregation reports as text tables, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/skdltmxn/binstats/binstats"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported format.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format selects the output encoding.
type Format int

const (
	FormatTable Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name. The empty string is the table format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatTable, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options controls how reports are written.
type Options struct {
	Format    Format
	Human     bool // sizes as KiB/MiB instead of bytes (table format only)
	Limit     int  // maximum number of symbol rows, 0 = unlimited
	NameWidth int  // truncate symbol names to this many characters, 0 = never
}

// Renderer writes reports to an output.
type Renderer struct {
	w    io.Writer
	opts Options
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	return &Renderer{w: w, opts: opts}
}

// StatRow is the encoded form of one statistic.
type StatRow struct {
	Type           string `json:"type" yaml:"type"`
	Description    string `json:"description" yaml:"description"`
	Size           uint64 `json:"size" yaml:"size"`
	SizePercent    int    `json:"sizePercent" yaml:"sizePercent"`
	Symbols        uint64 `json:"symbols" yaml:"symbols"`
	SymbolsPercent int    `json:"symbolsPercent" yaml:"symbolsPercent"`
}

// SymbolRow is the encoded form of one symbol.
type SymbolRow struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Address     uint64 `json:"address" yaml:"address"`
	Size        uint64 `json:"size" yaml:"size"`
	SizePercent int    `json:"sizePercent" yaml:"sizePercent"`
	Name        string `json:"name" yaml:"name"`
}

// Document is what the JSON and YAML formats encode.
type Document struct {
	Stats   []StatRow   `json:"stats,omitempty" yaml:"stats,omitempty"`
	Symbols []SymbolRow `json:"symbols,omitempty" yaml:"symbols,omitempty"`
}

// StatRows converts the statistics of rep.
func StatRows(rep *binstats.Report) []StatRow {
	return lo.Map(rep.Stats, func(st binstats.Statistic, _ int) StatRow {
		return StatRow{
			Type:           string(st.Type),
			Description:    st.Description(),
			Size:           st.Size,
			SizePercent:    rep.SizePercent(st.Size),
			Symbols:        st.Symbols,
			SymbolsPercent: rep.CountPercent(st.Symbols),
		}
	})
}

// SymbolRows converts the symbols of rep, at most limit of them when limit
// is positive.
func SymbolRows(rep *binstats.Report, limit int) []SymbolRow {
	syms := rep.Symbols
	if limit > 0 {
		syms = lo.Slice(syms, 0, limit)
	}
	return lo.Map(syms, func(sym binstats.Symbol, _ int) SymbolRow {
		return SymbolRow{
			Type:        string(sym.Type),
			Description: sym.Description(),
			Address:     sym.Address,
			Size:        sym.Size,
			SizePercent: rep.SizePercent(sym.Size),
			Name:        sym.Name,
		}
	})
}

// Stats writes the statistics table.
func (r *Renderer) Stats(rep *binstats.Report) error {
	return r.write(Document{Stats: StatRows(rep)}, rep.Total, true, false)
}

// Symbols writes the symbol list.
func (r *Renderer) Symbols(rep *binstats.Report) error {
	return r.write(Document{Symbols: SymbolRows(rep, r.opts.Limit)}, rep.Total, false, true)
}

// Report writes the statistics followed by the symbol list.
func (r *Renderer) Report(rep *binstats.Report) error {
	doc := Document{
		Stats:   StatRows(rep),
		Symbols: SymbolRows(rep, r.opts.Limit),
	}
	return r.write(doc, rep.Total, true, true)
}

// write encodes doc in the configured format. total is the grand total the
// table cells compute their shares against.
func (r *Renderer) write(doc Document, total binstats.Statistic, stats, symbols bool) error {
	switch r.opts.Format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	if stats {
		r.statsTable(doc.Stats, total)
	}
	if stats && symbols {
		fmt.Fprintln(r.w)
	}
	if symbols {
		r.symbolsTable(doc.Symbols, total)
	}
	return nil
}

func (r *Renderer) statsTable(rows []StatRow, total binstats.Statistic) {
	table := r.newTable([]string{"Type", "Size", "Symbols"})
	for _, row := range rows {
		table.Append([]string{
			row.Description,
			r.formatSize(row.Size, total.Size),
			binstats.FormatValue(row.Symbols, total.Symbols),
		})
	}
	table.Render()
}

func (r *Renderer) symbolsTable(rows []SymbolRow, total binstats.Statistic) {
	table := r.newTable([]string{"Type", "Size", "Symbol"})
	for _, row := range rows {
		table.Append([]string{
			row.Description,
			r.formatSize(row.Size, total.Size),
			truncate(row.Name, r.opts.NameWidth),
		})
	}
	table.Render()
}

func (r *Renderer) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func (r *Renderer) formatSize(size, ref uint64) string {
	if r.opts.Human {
		return fmt.Sprintf("%s (%d%%)", humanize.IBytes(size), binstats.Percent(size, ref))
	}
	return binstats.FormatValue(size, ref)
}

// Types writes the list of type buckets.
func (r *Renderer) Types(infos []binstats.TypeInfo) error {
	switch r.opts.Format {
	case FormatJSON, FormatYAML:
		rows := lo.Map(infos, func(info binstats.TypeInfo, _ int) map[string]string {
			return map[string]string{"type": string(info.Type), "description": info.Description}
		})
		if r.opts.Format == FormatJSON {
			enc := json.NewEncoder(r.w)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}

	table := r.newTable([]string{"Type", "Description"})
	for _, info := range infos {
		table.Append([]string{string(info.Type), info.Description})
	}
	table.Render()
	return nil
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
