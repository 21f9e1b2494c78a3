// Package binstats reads nm symbol listings and summarizes where the bytes
// of a binary go, per symbol type and per symbol.
package binstats

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoSymbols indicates that a listing produced no symbols at all.
	ErrNoSymbols = errors.New("binstats: failed to read symbols")

	// ErrInvalidType indicates a character that is not a symbol type letter.
	ErrInvalidType = errors.New("binstats: invalid symbol type")
)

// ReadError describes a listing that yielded no symbols.
type ReadError struct {
	Source    string // Where the listing came from, for display
	FirstLine string // First non-empty line of the listing, if any
}

func (e *ReadError) Error() string {
	if e.FirstLine == "" {
		return fmt.Sprintf("binstats: failed to read symbols from %q: no output", e.Source)
	}
	return fmt.Sprintf("binstats: failed to read symbols from %q: %s", e.Source, e.FirstLine)
}

func (e *ReadError) Unwrap() error { return ErrNoSymbols }
