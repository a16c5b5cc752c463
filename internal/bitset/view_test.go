package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aligned(n int) []byte {
	return wordsToBytes(make([]uint64, (n+7)/8))[:n]
}

func TestView_SwapAndTest(t *testing.T) {
	data := aligned(16)
	v, err := NewView(data, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(128), v.Len())

	assert.False(t, v.Swap(3, true))
	assert.True(t, v.Test(3))
	assert.True(t, v.Swap(3, true))
	assert.True(t, v.Swap(3, false))
	assert.False(t, v.Test(3))

	v.Swap(127, true)
	assert.True(t, v.Test(127))
	assert.False(t, v.Test(128))
	assert.False(t, v.Swap(128, true))
	assert.Equal(t, uint64(128), v.Len())
}

func TestView_BitOrder(t *testing.T) {
	data := aligned(8)
	v, err := NewView(data, 0)
	require.NoError(t, err)

	v.Swap(0, true)
	v.Swap(9, true)
	if littleEndian() {
		assert.Equal(t, byte(0x01), data[0])
		assert.Equal(t, byte(0x02), data[1])
	}
}

func TestView_Offset(t *testing.T) {
	data := aligned(24)
	v, err := NewView(data, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(128), v.Len())

	v.Swap(0, true)
	if littleEndian() {
		assert.Equal(t, byte(0), data[0])
		assert.Equal(t, byte(1), data[8])
	}

	_, err = NewView(data, 4)
	assert.ErrorIs(t, err, ErrUnaligned)
	_, err = NewView(data, 25)
	assert.Error(t, err)
}

func TestView_Counting(t *testing.T) {
	v, err := NewView(aligned(16), 0)
	require.NoError(t, err)

	for _, i := range []uint64{1, 5, 64, 100} {
		v.Swap(i, true)
	}
	assert.Equal(t, uint64(4), v.CountBelow(128))
	assert.Equal(t, uint64(2), v.CountBelow(64))
	assert.Equal(t, uint64(0), v.CountBelow(1))

	var got []uint64
	v.EachBelow(100, func(i uint64) { got = append(got, i) })
	assert.Equal(t, []uint64{1, 5, 64}, got)
}

func TestView_Empty(t *testing.T) {
	v, err := NewView(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v.Len())
	assert.False(t, v.Test(0))
	assert.False(t, v.Swap(0, true))
}
