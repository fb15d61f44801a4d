package arrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	values := []string{"alpha", "", "gamma", ""}
	present := []bool{true, true, true, false}
	a := NewText(values, present)

	require.Equal(t, 4, a.Len())
	assert.Equal(t, 1, a.Nulls())
	assert.Equal(t, uint64(10), a.TotalBytes())

	for i := range values {
		v, ok := a.Get(i)
		assert.Equal(t, present[i], ok)
		if ok {
			assert.Equal(t, values[i], v)
		}
	}

	out, mask := a.Export()
	assert.Equal(t, []string{"alpha", "", "gamma", ""}, out)
	assert.Equal(t, present, mask)
}

func TestTextOffsets(t *testing.T) {
	a := NewText([]string{"ab", "", "cde"}, nil)
	assert.Equal(t, []uint64{0, 2, 2, 5}, a.offsets)
	assert.Equal(t, []byte("abcde"), a.bytes)
}

func TestTextNullHasZeroLengthRange(t *testing.T) {
	a := NewText([]string{"xy", "ignored", "z"}, []bool{true, false, true})
	assert.Equal(t, []uint64{0, 2, 2, 3}, a.offsets)
	_, ok := a.Get(1)
	assert.False(t, ok)
}

func TestTextEmptyStringsKeepValidity(t *testing.T) {
	// Zero total bytes with present elements must not collapse to the
	// all-null state: the bitmap stays authoritative.
	a := NewText([]string{"", "", ""}, []bool{true, false, true})
	assert.Equal(t, uint64(0), a.TotalBytes())
	assert.False(t, a.AllNull())
	assert.NotNil(t, a.offsets)

	v, ok := a.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "", v)
	_, ok = a.Get(1)
	assert.False(t, ok)
}

func TestTextAllNullElidesBuffers(t *testing.T) {
	a := NewText([]string{"", ""}, []bool{false, false})
	assert.True(t, a.AllNull())
	assert.Nil(t, a.bytes)
	assert.Nil(t, a.offsets)
	assert.True(t, a.Equal(NewTextAllNull(2)))
}

func TestTextGetRefAliasesBuffer(t *testing.T) {
	a := NewText([]string{"hello", "world"}, nil)
	ref, ok := a.GetRef(1)
	require.True(t, ok)
	assert.Equal(t, "world", ref)

	_, ok = a.GetRef(2)
	assert.False(t, ok)
}

func TestTextEqual(t *testing.T) {
	a := NewText([]string{"a", "bc"}, nil)
	b := NewText([]string{"a", "bc"}, nil)
	assert.True(t, a.Equal(b))

	// Same bytes, different element boundaries.
	c := NewText([]string{"ab", "c"}, nil)
	assert.False(t, a.Equal(c))

	// Same layout, one cell nulled.
	d := NewText([]string{"a", "bc"}, []bool{true, false})
	assert.False(t, a.Equal(d))
}

func TestTextClone(t *testing.T) {
	a := NewText([]string{"one", "", "three"}, []bool{true, false, true})
	c := a.Clone()
	require.True(t, a.Equal(c))

	c.bytes[0] = 'x'
	v, _ := a.Get(0)
	assert.Equal(t, "one", v)
}
