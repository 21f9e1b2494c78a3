package binstats

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	s := NewSession()
	require.NotNil(t, s.Current())
	assert.True(t, s.Current().Empty())
	assert.Empty(t, s.Aggregate(AllEnabled()).Stats)

	first, err := s.Load(strings.NewReader("1 10 T a\n2 20 T b\n"))
	require.NoError(t, err)
	assert.Same(t, first, s.Current())
	assert.Equal(t, uint64(30), s.Aggregate(AllEnabled()).Total.Size)

	_, err = s.Load(failingReader{})
	require.Error(t, err)
	assert.Same(t, first, s.Current())

	second, err := s.Load(strings.NewReader("3 5 D c\n"))
	require.NoError(t, err)
	assert.Same(t, second, s.Current())
	assert.Equal(t, 2, first.Len())
}

func TestSessionConcurrentReaders(t *testing.T) {
	s := NewSession()
	listings := []string{
		"1 10 T a\n2 20 T b\n",
		"1 1 T a\n2 2 T b\n3 3 T c\n",
	}

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				r := s.Aggregate(AllEnabled())
				// a snapshot is either empty or one of the complete listings
				switch n := len(r.Symbols); n {
				case 0, 2, 3:
				default:
					t.Errorf("reader %d saw %d symbols", i, n)
				}
			}
		}()
	}
	for range 20 {
		for _, l := range listings {
			_, err := s.Load(strings.NewReader(l))
			require.NoError(t, err)
		}
	}
	wg.Wait()
}
