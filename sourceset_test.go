// File: slate/sourceset_test.go
package slate_test

import (
	"testing"

	"github.com/slatecfg/slate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *slate.SourceSet) []slate.Locator {
	var out []slate.Locator
	for loc := range s.All() {
		out = append(out, loc)
	}
	return out
}

func TestSourceSet(t *testing.T) {
	t.Run("Ascending Priority Order", func(t *testing.T) {
		a := slate.NewMapLocator(nil)
		b := slate.NewMapLocator(nil)
		c := slate.NewMapLocator(nil)

		s := slate.NewSourceSet()
		require.NoError(t, s.Add(b, 10))
		require.NoError(t, s.Add(c, 100))
		require.NoError(t, s.Add(a, 0))

		got := collect(s)
		require.Len(t, got, 3)
		assert.Same(t, a, got[0])
		assert.Same(t, b, got[1])
		assert.Same(t, c, got[2])
	})

	t.Run("Equal Priorities Keep Insertion Order", func(t *testing.T) {
		first := slate.NewMapLocator(nil)
		second := slate.NewMapLocator(nil)
		third := slate.NewMapLocator(nil)

		s := slate.NewSourceSet()
		require.NoError(t, s.Add(first, 5))
		require.NoError(t, s.Add(second, 5))
		require.NoError(t, s.Add(third, 5))

		got := collect(s)
		require.Len(t, got, 3)
		assert.Same(t, first, got[0])
		assert.Same(t, second, got[1])
		assert.Same(t, third, got[2])
	})

	t.Run("Restartable Traversal", func(t *testing.T) {
		s := slate.NewSourceSet()
		require.NoError(t, s.Add(slate.NewMapLocator(nil), 1))
		require.NoError(t, s.Add(slate.NewMapLocator(nil), 2))

		assert.Len(t, collect(s), 2)
		assert.Len(t, collect(s), 2)
	})

	t.Run("Last", func(t *testing.T) {
		s := slate.NewSourceSet()

		_, ok := s.Last()
		assert.False(t, ok)

		low := slate.NewMapLocator(nil)
		high := slate.NewMapLocator(nil)
		require.NoError(t, s.Add(high, 100))
		require.NoError(t, s.Add(low, 0))

		last, ok := s.Last()
		require.True(t, ok)
		assert.Same(t, high, last)
	})

	t.Run("Default Priority Searched Last", func(t *testing.T) {
		s := slate.NewSourceSet()
		defaulted := slate.NewMapLocator(nil)
		explicit := slate.NewMapLocator(nil)

		require.NoError(t, s.Add(defaulted, slate.DefaultPriority))
		require.NoError(t, s.Add(explicit, 1000))

		got := collect(s)
		assert.Same(t, explicit, got[0])
		assert.Same(t, defaulted, got[1])
	})

	t.Run("Nil Locator Rejected", func(t *testing.T) {
		s := slate.NewSourceSet()
		err := s.Add(nil, 0)
		assert.ErrorIs(t, err, slate.ErrNilLocator)
		assert.Equal(t, 0, s.Len())
	})
}
