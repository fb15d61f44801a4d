package arrow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRoundTrip(t *testing.T) {
	values := []int32{4, 0, 7, 0, -1}
	present := []bool{true, false, true, false, true}
	a := NewFixed(values, present)

	require.Equal(t, 5, a.Len())
	assert.Equal(t, 2, a.Nulls())
	assert.False(t, a.AllNull())

	for i := range values {
		v, ok := a.Get(i)
		assert.Equal(t, present[i], ok)
		if ok {
			assert.Equal(t, values[i], v)
		}
	}

	out, mask := a.Export()
	assert.Equal(t, []int32{4, 0, 7, 0, -1}, out)
	assert.Equal(t, present, mask)
}

func TestFixedAllPresentElidesBitmap(t *testing.T) {
	a := NewFixed([]uint32{1, 2, 3}, nil)
	assert.Equal(t, 0, a.Nulls())
	assert.Nil(t, a.valid.bits)

	_, mask := a.Export()
	assert.Nil(t, mask)
}

func TestFixedAllNullElidesBothBuffers(t *testing.T) {
	a := NewFixed([]float64{0, 0, 0}, []bool{false, false, false})
	assert.True(t, a.AllNull())
	assert.Equal(t, 3, a.Nulls())
	assert.Nil(t, a.values)
	assert.Nil(t, a.valid.bits)

	_, ok := a.Get(1)
	assert.False(t, ok)

	b := NewFixedAllNull[float64](3)
	assert.True(t, a.Equal(b))
}

func TestFixedEmpty(t *testing.T) {
	a := NewFixed([]int{}, nil)
	assert.Equal(t, 0, a.Len())
	assert.True(t, a.AllNull())

	_, ok := a.Get(0)
	assert.False(t, ok)
}

func TestFixedGetOutOfRange(t *testing.T) {
	a := NewFixed([]bool{true, false}, nil)
	_, ok := a.Get(2)
	assert.False(t, ok)
	_, ok = a.Get(-1)
	assert.False(t, ok)
}

func TestFixedNullPanicsOutOfRange(t *testing.T) {
	a := NewFixed([]int32{1}, nil)
	assert.False(t, a.Null(0))
	assert.Panics(t, func() { a.Null(1) })
}

func TestFixedEqualOrderSensitive(t *testing.T) {
	a := NewFixed([]int32{1, 2, 3}, nil)
	b := NewFixed([]int32{1, 2, 3}, nil)
	c := NewFixed([]int32{3, 2, 1}, nil)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestFixedEqualNullSensitive(t *testing.T) {
	a := NewFixed([]int32{1, 2, 3}, []bool{true, true, true})
	b := NewFixed([]int32{1, 2, 3}, []bool{true, false, true})
	assert.False(t, a.Equal(b))
}

func TestFixedNaNNotEqualToItself(t *testing.T) {
	a := NewFixed([]float64{1, math.NaN()}, nil)
	assert.False(t, a.Equal(a))
	assert.False(t, a.Equal(a.Clone()))
}

func TestFixedClone(t *testing.T) {
	a := NewFixed([]int32{5, 0, 9}, []bool{true, false, true})
	c := a.Clone()
	require.True(t, a.Equal(c))

	c.values[0] = 99
	v, _ := a.Get(0)
	assert.Equal(t, int32(5), v)

	n := NewFixedAllNull[int32](4)
	nc := n.Clone()
	assert.Nil(t, nc.values)
	assert.Nil(t, nc.valid.bits)
	assert.True(t, n.Equal(nc))
}
