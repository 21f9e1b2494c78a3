package binstats

import (
	"fmt"

	"github.com/skdltmxn/binstats/internal/wildcard"
)

// FilterState selects the symbols that take part in an aggregation.
// The zero value lets nothing through; start from AllEnabled.
type FilterState struct {
	// Pattern filters names. Empty matches everything, a pattern without
	// any of "*?#" is a substring search, anything else a full glob match.
	Pattern string

	Types   [26]bool // enabled type letters, indexed by upper case letter - 'A'
	Unknown bool     // symbols of type '?'
	Local   bool     // lower case types
	Global  bool     // upper case types
}

// AllEnabled returns a filter that lets every symbol through.
func AllEnabled() FilterState {
	f := FilterState{Unknown: true, Local: true, Global: true}
	for i := range f.Types {
		f.Types[i] = true
	}
	return f
}

// SetTypes enables or disables each type in letters. Letters are case
// insensitive; '?' stands for the unknown type.
func (f *FilterState) SetTypes(letters string, enabled bool) error {
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		switch {
		case c == UnknownType:
			f.Unknown = enabled
		case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
			f.Types[bucketOf(c)-'A'] = enabled
		default:
			return fmt.Errorf("%w: %q", ErrInvalidType, c)
		}
	}
	return nil
}

// OnlyTypes disables every type and then enables the ones in letters.
func (f *FilterState) OnlyTypes(letters string) error {
	f.Types = [26]bool{}
	f.Unknown = false
	return f.SetTypes(letters, true)
}

// TypeEnabled reports whether the bucket of type c is enabled.
func (f FilterState) TypeEnabled(c byte) bool {
	b := bucketOf(c)
	if b == UnknownType {
		return f.Unknown
	}
	return f.Types[b-'A']
}

// Allows applies the type and visibility part of the filter. Unknown types
// only depend on the Unknown flag.
func (f FilterState) Allows(s Symbol) bool {
	if !f.TypeEnabled(s.Type) {
		return false
	}
	switch {
	case s.IsLocal():
		return f.Local
	case s.IsGlobal():
		return f.Global
	default:
		return true
	}
}

// Matches applies the name pattern and then Allows.
func (f FilterState) Matches(s Symbol) bool {
	if f.Pattern != "" && !wildcard.MatchName(s.Name, f.Pattern) {
		return false
	}
	return f.Allows(s)
}
