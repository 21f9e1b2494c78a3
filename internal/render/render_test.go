package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/skdltmxn/binstats/binstats"
)

func sampleReport() *binstats.Report {
	table := binstats.FromLines([]string{
		"1 3072 T main",
		"2 1024 d counter",
		"3 0 b alias",
	})
	return binstats.Aggregate(table, binstats.AllEnabled())
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatTable, FormatJSON, FormatYAML} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, got)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestStatsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{}).Stats(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Symbols")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "4096 (100%)")
	assert.Contains(t, out, "3 (100%)")
	assert.Contains(t, out, "code")
	assert.Contains(t, out, "3072 (75%)")
	assert.Contains(t, out, "initialized data")
	assert.Contains(t, out, "1024 (25%)")
	assert.Contains(t, out, "uninitialized data (BSS)")
	assert.NotContains(t, out, "main")
}

func TestSymbolsTableHuman(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Human: true, Limit: 2}).Symbols(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "3.0 KiB (75%)")
	assert.Contains(t, out, "1.0 KiB (25%)")
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "counter")
	assert.NotContains(t, out, "alias")
}

func TestTableCellsMatchFormatValue(t *testing.T) {
	rep := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{}).Report(rep))

	out := buf.String()
	for _, st := range rep.Stats {
		assert.Contains(t, out, binstats.FormatValue(st.Size, rep.Total.Size), st.Description())
		assert.Contains(t, out, binstats.FormatValue(st.Symbols, rep.Total.Symbols), st.Description())
	}
	for _, sym := range rep.Symbols {
		assert.Contains(t, out, binstats.FormatValue(sym.Size, rep.Total.Size), sym.Name)
	}
	assert.Contains(t, out, "1 (33%)")
}

func TestReportTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{NameWidth: 5}).Report(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "co...")
	assert.NotContains(t, out, "counter")
}

func TestReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatJSON}).Report(sampleReport()))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Stats, 4)
	assert.Equal(t, StatRow{
		Type:           "_",
		Description:    "total",
		Size:           4096,
		SizePercent:    100,
		Symbols:        3,
		SymbolsPercent: 100,
	}, doc.Stats[0])
	require.Len(t, doc.Symbols, 3)
	assert.Equal(t, SymbolRow{
		Type:        "d",
		Description: "initialized data",
		Address:     2,
		Size:        1024,
		SizePercent: 25,
		Name:        "counter",
	}, doc.Symbols[1])
}

func TestSymbolsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatYAML, Limit: 1}).Symbols(sampleReport()))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Empty(t, doc.Stats)
	require.Len(t, doc.Symbols, 1)
	assert.Equal(t, "main", doc.Symbols[0].Name)
}

func TestTypes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{}).Types(binstats.Types()))
	assert.Contains(t, buf.String(), "weak object (untagged)")

	buf.Reset()
	require.NoError(t, New(&buf, Options{Format: FormatJSON}).Types(binstats.Types()))
	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 27)
	assert.Equal(t, "code", rows['T'-'A']["description"])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abcdef", truncate("abcdef", 0))
	assert.Equal(t, "abcdef", truncate("abcdef", 6))
	assert.Equal(t, "ab...", truncate("abcdef", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
