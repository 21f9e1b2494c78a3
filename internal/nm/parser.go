// Package nm parses the BSD-format output of nm invoked with symbol sizes
// (nm -S -f bsd -t d) and normalizes the symbol names it reports.
package nm

import (
	"strings"

	"github.com/skdltmxn/binstats/internal/demangle"
	"github.com/skdltmxn/binstats/internal/stream"
)

// DefaultRadix is the radix of the address and size fields for -t d output.
const DefaultRadix = 10

// CompilerSuffixes are the markers GCC and LLVM append to symbols they
// cloned or privatized. They are kept in the displayed name but removed
// before demangling.
var CompilerSuffixes = []string{
	".constprop.",
	".lto_priv.",
	".isra.",
	".part.",
	".cold",
	".llvm.",
}

// Record is one successfully parsed line.
type Record struct {
	Address uint64
	Size    uint64
	Type    byte
	Name    string
}

// Parser turns nm output lines into records.
type Parser struct {
	Demangler demangle.Demangler
	Radix     int
}

// NewParser creates a parser for decimal output using d to demangle names.
// A nil d leaves names as they are.
func NewParser(d demangle.Demangler) *Parser {
	return &Parser{Demangler: d, Radix: DefaultRadix}
}

// ParseLine parses a single line. The second result is false when the line
// is empty or does not have the shape "ADDR SIZE TYPE NAME".
func (p *Parser) ParseLine(line string) (Record, bool) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Record{}, false
	}

	radix := p.Radix
	if radix == 0 {
		radix = DefaultRadix
	}

	r := stream.NewReader(line)

	addr, err := r.ReadUint(radix)
	if err != nil || r.Expect(' ') != nil {
		return Record{}, false
	}

	size, err := r.ReadUint(radix)
	if err != nil || r.Expect(' ') != nil {
		return Record{}, false
	}

	typ, err := r.ReadByte()
	if err != nil || !IsTypeChar(typ) || r.Expect(' ') != nil {
		return Record{}, false
	}

	name := p.NormalizeName(r.Rest())
	if name == "" {
		return Record{}, false
	}

	return Record{
		Address: addr,
		Size:    size,
		Type:    typ,
		Name:    name,
	}, true
}

// NormalizeName strips compiler suffixes and namespace prefixes from raw,
// demangles what is left and puts the stripped parts back around the result.
// If demangling fails raw is returned unchanged.
func (p *Parser) NormalizeName(raw string) string {
	base, suffix := SplitCompilerSuffix(raw)
	prefix, mangled := SplitPrefix(base)

	if p.Demangler == nil {
		return raw
	}
	name, ok := p.Demangler.Demangle(mangled)
	if !ok {
		return raw
	}

	name = prefix + name
	if suffix != "" {
		name += "." + suffix
	}
	return name
}

// IsTypeChar reports whether c is a valid nm type character.
func IsTypeChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '?'
}

// SplitCompilerSuffix finds the earliest compiler suffix marker in name and
// splits name at the dot that starts it. The returned suffix does not
// include that dot. Without a marker suffix is empty.
func SplitCompilerSuffix(name string) (base, suffix string) {
	at := -1
	for _, marker := range CompilerSuffixes {
		if i := strings.Index(name, marker); i >= 0 && (at < 0 || i < at) {
			at = i
		}
	}
	if at < 0 {
		return name, ""
	}
	return name[:at], name[at+1:]
}

// SplitPrefix splits name after the last '.' or '$'. The prefix keeps the
// separator. Without a separator the prefix is empty.
func SplitPrefix(name string) (prefix, symbol string) {
	i := strings.LastIndexAny(name, ".$")
	if i < 0 {
		return "", name
	}
	return name[:i+1], name[i+1:]
}
