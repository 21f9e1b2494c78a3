package binstats

import (
	"io"
	"sync/atomic"
)

// Session keeps the current symbol table of an interactive consumer.
// A new listing replaces the table only after it was read completely, so
// concurrent readers see either the old or the new table.
type Session struct {
	current atomic.Pointer[SymbolTable]
	opts    []Option
}

// NewSession creates a session with an empty table. opts apply to every Load.
func NewSession(opts ...Option) *Session {
	s := &Session{opts: opts}
	s.current.Store(&SymbolTable{})
	return s
}

// Load reads a listing and makes it the current table. On an I/O error the
// previous table stays current.
func (s *Session) Load(r io.Reader) (*SymbolTable, error) {
	t, err := Read(r, s.opts...)
	if err != nil {
		return nil, err
	}
	s.current.Store(t)
	return t, nil
}

// Current returns the current table.
func (s *Session) Current() *SymbolTable {
	return s.current.Load()
}

// Aggregate aggregates the current table with f.
func (s *Session) Aggregate(f FilterState) *Report {
	return Aggregate(s.Current(), f)
}
