package chainmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSet(t *testing.T, opts ...Option) *Set {
	s, err := NewSet(opts...)
	require.NoError(t, err)

	return s
}

func TestSet_Add(t *testing.T) {
	s := newSet(t)

	require.NoError(t, s.Add([]byte("foo")))
	require.ErrorIs(t, s.Add([]byte("foo")), ErrExists)

	assert.True(t, s.Has([]byte("foo")))
	assert.False(t, s.Has([]byte("bar")))
	assert.Equal(t, 1, s.Len())
}

func TestSet_Fill(t *testing.T) {
	s := newSet(t)

	for i := range 1000 {
		require.NoError(t, s.Add(fmt.Appendf(nil, "%d", i)))
	}

	require.Equal(t, 1000, s.Len())
	require.Equal(t, 2237, s.Stats().Capacity)

	for i := range 1000 {
		require.True(t, s.Has(fmt.Appendf(nil, "%d", i)))
	}

	for i := range 1000 {
		require.NoError(t, s.Delete(fmt.Appendf(nil, "%d", i)))
	}

	require.Equal(t, 0, s.Len())
	require.Equal(t, minCapacity(), s.Stats().Capacity)
}

func TestSet_Collisions(t *testing.T) {
	collisionHash := func(k []byte) uint32 {
		return 0
	}

	s := newSet(t, WithHashFunc(collisionHash))

	require.NoError(t, s.Add([]byte("A")))
	require.NoError(t, s.Add([]byte("B")))
	require.NoError(t, s.Add([]byte("C")))

	// Delete the middle of the chain.
	require.NoError(t, s.Delete([]byte("B")))
	require.ErrorIs(t, s.Delete([]byte("B")), ErrNotFound)

	require.True(t, s.Has([]byte("A")))
	require.True(t, s.Has([]byte("C")), "chain broken: could not find 'C' after deleting 'B'")
}

func TestSet_Free(t *testing.T) {
	s := newSet(t)
	require.NoError(t, s.Add([]byte("foo")))

	require.NoError(t, s.Free())
	require.ErrorIs(t, s.Free(), ErrInvalidArgument)
	require.ErrorIs(t, s.Add([]byte("foo")), ErrInvalidArgument)
	require.ErrorIs(t, s.Delete([]byte("foo")), ErrInvalidArgument)
	require.False(t, s.Has([]byte("foo")))
	require.Equal(t, 0, s.Len())
}
