package binstats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *SymbolTable {
	return FromLines([]string{
		"1 100 T main",
		"2 40 t helper",
		"3 60 D table",
		"4 0 d alias",
		"5 20 B buffer",
		"6 10 ? mystery",
		"7 30 r strings",
	})
}

func TestAggregateAllEnabled(t *testing.T) {
	table := sampleTable()
	r := Aggregate(table, AllEnabled())

	assert.Equal(t, table.Symbols(), r.Symbols)
	assert.Equal(t, Statistic{Type: TotalType, Size: 260, Symbols: 7}, r.Total)
	assert.Equal(t, []Statistic{
		{Type: TotalType, Size: 260, Symbols: 7},
		{Type: 'T', Size: 140, Symbols: 2},
		{Type: 'D', Size: 60, Symbols: 2},
		{Type: 'R', Size: 30, Symbols: 1},
		{Type: 'B', Size: 20, Symbols: 1},
		{Type: UnknownType, Size: 10, Symbols: 1},
	}, r.Stats)
}

func TestAggregateIdempotent(t *testing.T) {
	table := sampleTable()
	f := AllEnabled()
	f.Pattern = "*e*"

	first := Aggregate(table, f)
	second := Aggregate(table, f)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("reports differ (-first +second):\n%s", diff)
	}
}

func TestAggregateZeroSize(t *testing.T) {
	table := FromLines([]string{
		"1 0 T zero",
		"2 10 T ten",
	})
	r := Aggregate(table, AllEnabled())
	assert.Equal(t, uint64(10), r.Total.Size)
	assert.Equal(t, uint64(2), r.Total.Symbols)
	require.Len(t, r.Stats, 2)
	assert.Equal(t, Statistic{Type: 'T', Size: 10, Symbols: 2}, r.Stats[1])
}

func TestAggregateTypeDisabled(t *testing.T) {
	table := sampleTable()
	f := AllEnabled()
	require.NoError(t, f.SetTypes("T", false))

	r := Aggregate(table, f)
	for _, sym := range r.Symbols {
		assert.NotEqual(t, byte('T'), sym.Bucket(), sym.Name)
	}
	for _, st := range r.Stats {
		assert.NotEqual(t, byte('T'), st.Type)
	}
	assert.Equal(t, Statistic{Type: TotalType, Size: 120, Symbols: 5}, r.Total)
}

func TestAggregateVisibility(t *testing.T) {
	table := sampleTable()

	f := AllEnabled()
	f.Local = false
	r := Aggregate(table, f)
	assert.Equal(t, []string{"main", "table", "buffer", "mystery"}, symbolNames(r.Symbols))

	f = AllEnabled()
	f.Global = false
	r = Aggregate(table, f)
	assert.Equal(t, []string{"helper", "strings", "mystery", "alias"}, symbolNames(r.Symbols))

	f = AllEnabled()
	f.Unknown = false
	r = Aggregate(table, f)
	assert.NotContains(t, symbolNames(r.Symbols), "mystery")
}

func TestAggregatePattern(t *testing.T) {
	table := sampleTable()

	f := AllEnabled()
	f.Pattern = "er"
	r := Aggregate(table, f)
	assert.Equal(t, []string{"helper", "buffer", "mystery"}, symbolNames(r.Symbols))

	f.Pattern = "*er"
	r = Aggregate(table, f)
	assert.Equal(t, []string{"helper", "buffer"}, symbolNames(r.Symbols))

	f.Pattern = "m*"
	r = Aggregate(table, f)
	assert.Equal(t, []string{"main", "mystery"}, symbolNames(r.Symbols))
	assert.Equal(t, Statistic{Type: TotalType, Size: 110, Symbols: 2}, r.Total)
}

func TestAggregateNothingMatches(t *testing.T) {
	f := AllEnabled()
	f.Pattern = "nothing"
	r := Aggregate(sampleTable(), f)
	assert.Empty(t, r.Symbols)
	assert.Empty(t, r.Stats)

	r = Aggregate(nil, AllEnabled())
	assert.Empty(t, r.Stats)
}

func TestAggregateTieOrder(t *testing.T) {
	table := FromLines([]string{
		"1 10 ? q",
		"2 10 W w",
		"3 10 A a",
	})
	f := AllEnabled()
	r := Aggregate(table, f)
	types := make([]byte, 0, len(r.Stats))
	for _, st := range r.Stats {
		types = append(types, st.Type)
	}
	assert.Equal(t, []byte{TotalType, 'A', 'W', UnknownType}, types)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 100))
	assert.Equal(t, 100, Percent(100, 100))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 1, Percent(1, 200))
	assert.Equal(t, 0, Percent(1, 201))
	assert.Equal(t, 0, Percent(5, 0))
}

func TestReportPercentages(t *testing.T) {
	r := Aggregate(sampleTable(), AllEnabled())
	assert.Equal(t, 38, r.SizePercent(100))
	assert.Equal(t, 29, r.CountPercent(2))
	assert.Equal(t, "100 (38%)", FormatValue(100, r.Total.Size))
}

func symbolNames(syms []Symbol) []string {
	out := make([]string, 0, len(syms))
	for _, s := range syms {
		out = append(out, s.Name)
	}
	return out
}
