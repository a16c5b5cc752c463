//go:build !invariants && !race

package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmmap/internal/errs"
)

func TestSet_BeyondLenIgnored(t *testing.T) {
	s := openTest(t, t.TempDir())
	require.NoError(t, s.Grow(10))

	assert.False(t, s.Set(10, true))
	assert.False(t, s.Set(5000, true))
	assert.False(t, s.Get(10))
	assert.Equal(t, uint64(0), s.Count())

	// The bit must not have reached the file either.
	require.NoError(t, s.Grow(11))
	assert.False(t, s.Get(10))
}

func TestUseAfterClose(t *testing.T) {
	s := openTest(t, t.TempDir())
	require.NoError(t, s.Grow(10))
	s.Set(1, true)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Grow(20), errs.ErrIO)
	assert.False(t, s.Get(1))
	assert.False(t, s.Set(1, true))
	assert.Equal(t, uint64(0), s.Count())
}
