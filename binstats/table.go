package binstats

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/skdltmxn/binstats/internal/demangle"
	"github.com/skdltmxn/binstats/internal/nm"
)

// maxLineSize bounds a single line of nm output. Demangled template names
// can get very long.
const maxLineSize = 16 << 20

// Demangler turns a mangled symbol into its readable form. The boolean
// result reports success; on failure the raw name is kept.
type Demangler = demangle.Demangler

// Option configures how a listing is read.
type Option func(*readOptions)

type readOptions struct {
	demangler Demangler
	radix     int
	logger    log.Logger
}

// WithDemangler sets the demangler applied to every symbol name.
// Without it names are kept as nm printed them.
func WithDemangler(d Demangler) Option {
	return func(o *readOptions) { o.demangler = d }
}

// WithRadix sets the radix of the address and size columns (nm -t).
func WithRadix(radix int) Option {
	return func(o *readOptions) { o.radix = radix }
}

// WithLogger sets the logger that receives debug output about dropped lines.
func WithLogger(logger log.Logger) Option {
	return func(o *readOptions) { o.logger = logger }
}

func newReadOptions(opts []Option) *readOptions {
	o := &readOptions{
		radix:  nm.DefaultRadix,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SymbolTable is an immutable, size ordered snapshot of one listing.
// It is safe for concurrent read access.
type SymbolTable struct {
	symbols   []Symbol
	firstLine string
	skipped   int
}

// Read parses a whole nm listing from r. Lines that do not look like
// "ADDR SIZE TYPE NAME" are dropped. Only I/O errors are returned; a listing
// without symbols yields an empty table, see SymbolTable.Err.
func Read(r io.Reader, opts ...Option) (*SymbolTable, error) {
	b := newBuilder(newReadOptions(opts))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		b.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("binstats: failed to read listing: %w", err)
	}

	return b.finish(), nil
}

// FromLines builds a table from lines already split.
func FromLines(lines []string, opts ...Option) *SymbolTable {
	b := newBuilder(newReadOptions(opts))
	for _, line := range lines {
		b.add(line)
	}
	return b.finish()
}

type builder struct {
	parser  *nm.Parser
	logger  log.Logger
	table   *SymbolTable
	scanned int
}

func newBuilder(o *readOptions) *builder {
	p := &nm.Parser{Radix: o.radix}
	if o.demangler != nil {
		p.Demangler = o.demangler
	}
	return &builder{
		parser: p,
		logger: o.logger,
		table:  &SymbolTable{},
	}
}

func (b *builder) add(line string) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}
	b.scanned++
	if b.table.firstLine == "" {
		b.table.firstLine = line
	}

	rec, ok := b.parser.ParseLine(line)
	if !ok {
		b.table.skipped++
		level.Debug(b.logger).Log("msg", "dropped malformed line", "line", line)
		return
	}

	b.table.symbols = append(b.table.symbols, Symbol{
		Address: rec.Address,
		Size:    rec.Size,
		Type:    rec.Type,
		Name:    rec.Name,
	})
}

func (b *builder) finish() *SymbolTable {
	t := b.table
	slices.SortStableFunc(t.symbols, func(x, y Symbol) int {
		return cmp.Compare(y.Size, x.Size)
	})
	level.Debug(b.logger).Log("msg", "read symbols", "lines", b.scanned, "symbols", len(t.symbols), "skipped", t.skipped)
	return t
}

// Len returns the number of symbols.
func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.symbols)
}

// Empty reports whether the table holds no symbols.
func (t *SymbolTable) Empty() bool {
	return t.Len() == 0
}

// At returns the i-th symbol in size order.
func (t *SymbolTable) At(i int) Symbol {
	return t.symbols[i]
}

// FirstLine returns the first non-empty line of the listing, whether or not
// it parsed.
func (t *SymbolTable) FirstLine() string {
	if t == nil {
		return ""
	}
	return t.firstLine
}

// Skipped returns how many non-empty lines were dropped as malformed.
func (t *SymbolTable) Skipped() int {
	if t == nil {
		return 0
	}
	return t.skipped
}

// All returns an iterator over the symbols, largest first.
func (t *SymbolTable) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		if t == nil {
			return
		}
		for _, sym := range t.symbols {
			if !yield(sym) {
				return
			}
		}
	}
}

// Symbols returns a copy of the symbols, largest first.
func (t *SymbolTable) Symbols() []Symbol {
	if t == nil {
		return nil
	}
	return slices.Clone(t.symbols)
}

// Err returns a *ReadError when the table is empty and nil otherwise.
// source names the listing in the message.
func (t *SymbolTable) Err(source string) error {
	if !t.Empty() {
		return nil
	}
	return &ReadError{Source: source, FirstLine: t.FirstLine()}
}
