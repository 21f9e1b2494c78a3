package binstats

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// numBuckets is one bucket per letter plus one for unknown types.
const numBuckets = 27

// Statistic is the size and symbol count of one type bucket.
type Statistic struct {
	Type    byte
	Size    uint64
	Symbols uint64
}

// Description returns a readable name for the bucket.
func (s Statistic) Description() string { return TypeDescription(s.Type) }

func (s *Statistic) add(sym Symbol) {
	s.Symbols++
	// zero sized aliases are counted but do not contribute bytes
	if sym.Size > 0 {
		s.Size += sym.Size
	}
}

// Report is the result of one aggregation pass.
type Report struct {
	// Stats holds the grand total (when any symbol passed the filter) and
	// every non-empty bucket, largest size first.
	Stats []Statistic

	// Symbols holds the symbols that passed the filter, largest first.
	Symbols []Symbol

	// Total is the grand total over Symbols. Its Type is TotalType.
	Total Statistic
}

// Aggregate filters the symbols of t with f and sums them up per type.
// Nothing is cached: every call recomputes the report from scratch.
func Aggregate(t *SymbolTable, f FilterState) *Report {
	var buckets [numBuckets]Statistic
	for i := range 26 {
		buckets[i].Type = byte('A' + i)
	}
	buckets[26].Type = UnknownType

	r := &Report{Total: Statistic{Type: TotalType}}
	for sym := range t.All() {
		if !f.Matches(sym) {
			continue
		}
		r.Symbols = append(r.Symbols, sym)
		r.Total.add(sym)
		buckets[bucketIndex(sym.Type)].add(sym)
	}

	if len(r.Symbols) > 0 {
		r.Stats = append(r.Stats, r.Total)
	}
	for _, b := range buckets {
		if b.Symbols > 0 {
			r.Stats = append(r.Stats, b)
		}
	}
	slices.SortStableFunc(r.Stats, func(x, y Statistic) int {
		return cmp.Compare(y.Size, x.Size)
	})

	return r
}

func bucketIndex(c byte) int {
	b := bucketOf(c)
	if b == UnknownType {
		return 26
	}
	return int(b - 'A')
}

// SizePercent returns size as a rounded percentage of the total size.
func (r *Report) SizePercent(size uint64) int {
	return Percent(size, r.Total.Size)
}

// CountPercent returns n as a rounded percentage of the total symbol count.
func (r *Report) CountPercent(n uint64) int {
	return Percent(n, r.Total.Symbols)
}

// Percent returns 100*value/ref rounded half away from zero.
// A zero ref yields 0.
func Percent(value, ref uint64) int {
	if ref == 0 {
		return 0
	}
	return int(math.Round(100 * float64(value) / float64(ref)))
}

// FormatValue formats value together with its share of ref, e.g. "64 (12%)".
func FormatValue(value, ref uint64) string {
	return fmt.Sprintf("%d (%d%%)", value, Percent(value, ref))
}
