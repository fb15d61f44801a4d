package arrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidityStates(t *testing.T) {
	all := NewValidity(3, nil)
	assert.True(t, all.AllPresent())
	assert.Nil(t, all.bits)

	none := AllNullValidity(3)
	assert.True(t, none.AllNull())
	assert.Nil(t, none.bits)
	assert.True(t, none.Null(2))

	mixed := NewValidity(3, []bool{true, false, true})
	assert.False(t, mixed.AllPresent())
	assert.False(t, mixed.AllNull())
	assert.NotNil(t, mixed.bits)
	assert.False(t, mixed.Null(0))
	assert.True(t, mixed.Null(1))
	assert.False(t, mixed.Null(2))
}

func TestValidityUniformMaskElides(t *testing.T) {
	// A mask that happens to be uniform must still elide the bitmap.
	all := NewValidity(10, []bool{true, true, true, true, true, true, true, true, true, true})
	assert.Nil(t, all.bits)
	assert.True(t, all.Equal(NewValidity(10, nil)))

	none := NewValidity(2, []bool{false, false})
	assert.Nil(t, none.bits)
	assert.True(t, none.Equal(AllNullValidity(2)))
}

func TestValidityBytePacking(t *testing.T) {
	present := make([]bool, 17)
	for i := range present {
		present[i] = i%3 != 0
	}
	v := NewValidity(17, present)
	assert.Len(t, v.bits, 3)
	for i, p := range present {
		assert.Equal(t, !p, v.Null(i), "bit %d", i)
	}
}

func TestValidityEmptyVacuouslyAllNull(t *testing.T) {
	v := NewValidity(0, nil)
	assert.True(t, v.AllNull())
	assert.True(t, v.AllPresent())
}

func TestValidityNullPanics(t *testing.T) {
	v := NewValidity(4, nil)
	assert.Panics(t, func() { v.Null(4) })
	assert.Panics(t, func() { v.Null(-1) })
}
