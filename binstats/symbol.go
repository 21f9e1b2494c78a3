package binstats

import "fmt"

// Symbol type characters with a special meaning.
const (
	// TotalType keys the synthetic grand total statistic.
	TotalType byte = '_'

	// UnknownType is the type nm reports for symbols it cannot classify.
	UnknownType byte = '?'
)

// Symbol is one entry of an nm listing.
type Symbol struct {
	Address uint64
	Size    uint64
	Type    byte   // nm type letter; lower case means local
	Name    string // demangled name
}

// IsLocal reports whether the symbol has local (static) visibility.
func (s Symbol) IsLocal() bool { return s.Type >= 'a' && s.Type <= 'z' }

// IsGlobal reports whether the symbol has global (external) visibility.
func (s Symbol) IsGlobal() bool { return s.Type >= 'A' && s.Type <= 'Z' }

// IsUnknown reports whether the symbol type is not a letter.
func (s Symbol) IsUnknown() bool { return !s.IsLocal() && !s.IsGlobal() }

// Bucket returns the statistic key for the symbol: its type letter in upper
// case, or UnknownType.
func (s Symbol) Bucket() byte { return bucketOf(s.Type) }

// Description returns a readable name for the symbol type.
func (s Symbol) Description() string { return TypeDescription(s.Type) }

func bucketOf(c byte) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return c
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A'
	default:
		return UnknownType
	}
}

// typeNames maps the upper case type letters to the meaning given in the
// binutils nm manual. Letters nm does not assign are empty.
var typeNames = [26]string{
	'A' - 'A': "absolute value",
	'B' - 'A': "uninitialized data (BSS)",
	'C' - 'A': "uninitialized data (common)",
	'D' - 'A': "initialized data",
	'G' - 'A': "initialized data (small)",
	'I' - 'A': "indirect function",
	'N' - 'A': "debugging",
	'P' - 'A': "stack unwind",
	'R' - 'A': "read only data",
	'S' - 'A': "uninitialized data (small)",
	'T' - 'A': "code",
	'U' - 'A': "unique global",
	'V' - 'A': "weak object",
	'W' - 'A': "weak object (untagged)",
}

// TypeDescription returns a readable name for a type character.
func TypeDescription(c byte) string {
	switch b := bucketOf(c); {
	case c == TotalType:
		return "total"
	case b == UnknownType:
		return "unknown"
	case typeNames[b-'A'] != "":
		return typeNames[b-'A']
	default:
		return fmt.Sprintf("type %c", b)
	}
}

// TypeInfo describes one statistic bucket.
type TypeInfo struct {
	Type        byte
	Description string
}

// Types lists every bucket in statistic order: A to Z, then unknown.
func Types() []TypeInfo {
	infos := make([]TypeInfo, 0, numBuckets)
	for c := byte('A'); c <= 'Z'; c++ {
		infos = append(infos, TypeInfo{Type: c, Description: TypeDescription(c)})
	}
	return append(infos, TypeInfo{Type: UnknownType, Description: TypeDescription(UnknownType)})
}
