// Package demangle adapts symbol demangling libraries to the single
// name-in, name-out contract the line parser needs.
package demangle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

// ErrUnknownStyle is returned by ParseStyle for an unsupported style name.
var ErrUnknownStyle = errors.New("demangle: unknown style")

// Demangler turns a mangled symbol into its readable form.
// The boolean result is false when the name could not be demangled; the
// returned string is meaningless in that case.
type Demangler interface {
	Demangle(mangled string) (string, bool)
}

// Func adapts an ordinary function to the Demangler interface.
type Func func(mangled string) (string, bool)

// Demangle calls f(mangled).
func (f Func) Demangle(mangled string) (string, bool) {
	return f(mangled)
}

// Nop never demangles anything.
var Nop Demangler = Func(func(string) (string, bool) { return "", false })

// Style selects how much detail demangled names carry.
type Style int

const (
	StyleFull       Style = iota // full signature
	StyleTemplates               // drop function parameters
	StyleSimplified              // drop function parameters and template arguments
	StyleNone                    // leave names mangled
)

func (s Style) String() string {
	switch s {
	case StyleFull:
		return "full"
	case StyleTemplates:
		return "templates"
	case StyleSimplified:
		return "simplified"
	case StyleNone:
		return "none"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle parses the textual name of a Style. The empty string is full.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "", "full":
		return StyleFull, nil
	case "templates":
		return StyleTemplates, nil
	case "simplified":
		return StyleSimplified, nil
	case "none":
		return StyleNone, nil
	default:
		return StyleFull, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

func (s Style) options() []demangle.Option {
	switch s {
	case StyleTemplates:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams}
	case StyleSimplified:
		return []demangle.Option{demangle.NoParams, demangle.NoEnclosingParams, demangle.NoTemplateParams}
	default:
		return nil
	}
}

// Itanium demangles Itanium C++ ABI and Rust symbols.
type Itanium struct {
	opts []demangle.Option
}

// New returns the demangler for the given style.
func New(style Style) Demangler {
	if style == StyleNone {
		return Nop
	}
	return &Itanium{opts: style.options()}
}

// Demangle implements Demangler.
func (d *Itanium) Demangle(mangled string) (string, bool) {
	if mangled == "" {
		return "", false
	}
	s, err := demangle.ToString(mangled, d.opts...)
	if err == nil {
		return s, true
	}
	// Mach-O symbols carry an extra leading underscore.
	if strings.HasPrefix(mangled, "__Z") || strings.HasPrefix(mangled, "__R") {
		if s, err = demangle.ToString(mangled[1:], d.opts...); err == nil {
			return s, true
		}
	}
	return "", false
}
