// Package stream provides a forward-only cursor for reading whitespace
// separated fields out of a single line of tool output.
package stream

import (
	"errors"
	"math"
)

// Errors returned by Reader
var (
	ErrUnexpectedEOF  = errors.New("stream: unexpected end of line")
	ErrNoDigits       = errors.New("stream: no digits")
	ErrUnexpectedByte = errors.New("stream: unexpected byte")
	ErrOverflow       = errors.New("stream: numeric overflow")
	ErrInvalidBase    = errors.New("stream: invalid numeric base")
)

// Reader reads fields from a line of text.
type Reader struct {
	data   string
	offset int
}

// NewReader creates a Reader over s.
func NewReader(s string) *Reader {
	return &Reader{data: s, offset: 0}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of bytes remaining.
func (r *Reader) Remaining() int {
	if r.offset >= len(r.data) {
		return 0
	}
	return len(r.data) - r.offset
}

// Peek returns the next byte without consuming it.
func (r *Reader) Peek() (byte, error) {
	if r.offset >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	return r.data[r.offset], nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.offset >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	c := r.data[r.offset]
	r.offset++
	return c, nil
}

// Expect consumes the next byte if it equals c.
func (r *Reader) Expect(c byte) error {
	got, err := r.Peek()
	if err != nil {
		return err
	}
	if got != c {
		return ErrUnexpectedByte
	}
	r.offset++
	return nil
}

// ReadUint reads an unsigned integer in the given base (2 to 16).
// Leading spaces are skipped, the way strtoull skips them; a sign is not
// accepted. The position is left on the first byte that is not a digit.
func (r *Reader) ReadUint(base int) (uint64, error) {
	if base < 2 || base > 16 {
		return 0, ErrInvalidBase
	}
	for r.offset < len(r.data) && r.data[r.offset] == ' ' {
		r.offset++
	}

	start := r.offset
	var v uint64
	for r.offset < len(r.data) {
		d := digitValue(r.data[r.offset])
		if d < 0 || d >= base {
			break
		}
		if v > (math.MaxUint64-uint64(d))/uint64(base) {
			return 0, ErrOverflow
		}
		v = v*uint64(base) + uint64(d)
		r.offset++
	}
	if r.offset == start {
		return 0, ErrNoDigits
	}
	return v, nil
}

// Rest returns everything after the current position and moves to the end.
func (r *Reader) Rest() string {
	if r.offset >= len(r.data) {
		return ""
	}
	s := r.data[r.offset:]
	r.offset = len(r.data)
	return s
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
