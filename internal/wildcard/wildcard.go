// Package wildcard implements the glob dialect used to filter symbol names.
//
// The dialect knows three wildcards:
//
//	*  any sequence of characters, including the empty one
//	?  exactly one character
//	#  exactly one ASCII digit
//
// Every other character matches itself. There is no escaping. Matching works
// on bytes, so '?' consumes one byte of a multibyte UTF-8 sequence and invalid
// UTF-8 is compared as it is.
package wildcard

import "strings"

// Wildcards lists the characters with special meaning in a pattern.
const Wildcards = "*?#"

// Match reports whether the whole of text matches pattern.
//
// Stars are matched greedily from the shortest extent upwards: when a run of
// tokens after a star fails, the star absorbs one more byte of text and
// the run is retried from the saved pattern position.
func Match(text, pattern string) bool {
	t, p := 0, 0
	// star is the pattern index just after the last run of '*', or -1 when no
	// star has been seen. mark is the text index the star currently extends to.
	star, mark := -1, 0

	for t < len(text) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			for p < len(pattern) && pattern[p] == '*' {
				p++
			}
			if p == len(pattern) {
				return true
			}
			star, mark = p, t
		case p < len(pattern) && matchByte(text[t], pattern[p]):
			t++
			p++
		case star >= 0:
			// backtrack: let the star swallow one more byte
			mark++
			t, p = mark, star
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

// matchByte matches a single non-star pattern token against c.
func matchByte(c, tok byte) bool {
	switch tok {
	case '?':
		return true
	case '#':
		return c >= '0' && c <= '9'
	default:
		return c == tok
	}
}

// HasWildcards reports whether pattern contains any of the wildcard characters.
func HasWildcards(pattern string) bool {
	return strings.ContainsAny(pattern, Wildcards)
}

// MatchName applies the name filter rule: an empty pattern accepts every
// name, a pattern without wildcards is a substring test, anything else has to
// match the whole name.
func MatchName(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	if !HasWildcards(pattern) {
		return strings.Contains(name, pattern)
	}
	return Match(name, pattern)
}
