package binstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterZeroValue(t *testing.T) {
	var f FilterState
	assert.False(t, f.Matches(Symbol{Type: 'T', Name: "main"}))
	assert.False(t, f.Matches(Symbol{Type: '?', Name: "x"}))
}

func TestFilterSetTypes(t *testing.T) {
	f := AllEnabled()
	require.NoError(t, f.SetTypes("tD?", false))
	assert.False(t, f.TypeEnabled('T'))
	assert.False(t, f.TypeEnabled('t'))
	assert.False(t, f.TypeEnabled('d'))
	assert.False(t, f.TypeEnabled('?'))
	assert.True(t, f.TypeEnabled('B'))

	err := f.SetTypes("T1", true)
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestFilterOnlyTypes(t *testing.T) {
	f := AllEnabled()
	require.NoError(t, f.OnlyTypes("tr"))
	for _, info := range Types() {
		want := info.Type == 'T' || info.Type == 'R'
		assert.Equal(t, want, f.TypeEnabled(info.Type), string(info.Type))
	}
}

func TestFilterAllows(t *testing.T) {
	f := AllEnabled()
	f.Local = false
	assert.False(t, f.Allows(Symbol{Type: 't'}))
	assert.True(t, f.Allows(Symbol{Type: 'T'}))
	assert.True(t, f.Allows(Symbol{Type: '?'}))

	f = AllEnabled()
	f.Global = false
	assert.True(t, f.Allows(Symbol{Type: 't'}))
	assert.False(t, f.Allows(Symbol{Type: 'T'}))
	assert.True(t, f.Allows(Symbol{Type: '?'}))
}

func TestFilterMatchesPattern(t *testing.T) {
	f := AllEnabled()
	f.Pattern = "vector"
	assert.True(t, f.Matches(Symbol{Type: 'W', Name: "std::vector<int>::~vector()"}))
	assert.False(t, f.Matches(Symbol{Type: 'W', Name: "std::map<int, int>::~map()"}))

	f.Pattern = "std::*"
	assert.True(t, f.Matches(Symbol{Type: 'W', Name: "std::map<int, int>::~map()"}))
	assert.False(t, f.Matches(Symbol{Type: 'W', Name: "foo::std::x"}))
}
