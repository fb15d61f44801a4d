package column

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellZeroValueIsNone(t *testing.T) {
	var c Cell
	assert.True(t, c.IsNone())
	assert.Equal(t, KindNone, c.Kind())
	assert.Equal(t, None, c)
}

func TestCellAccessors(t *testing.T) {
	assert.Equal(t, int32(-4), I32Cell(-4).I32())
	assert.Equal(t, uint32(4), U32Cell(4).U32())
	assert.Equal(t, -9, IntCell(-9).Int())
	assert.Equal(t, uint(9), UintCell(9).Uint())
	assert.Equal(t, float32(2.5), F32Cell(2.5).F32())
	assert.Equal(t, 2.5, F64Cell(2.5).F64())
	assert.True(t, BoolCell(true).Bool())
	assert.Equal(t, "hi", TextCell("hi").Text())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", None.String())
	assert.Equal(t, "-42", I32Cell(-42).String())
	assert.Equal(t, "42", UintCell(42).String())
	assert.Equal(t, "2.5", F32Cell(2.5).String())
	assert.Equal(t, "2", F64Cell(2).String())
	assert.Equal(t, "true", BoolCell(true).String())
	assert.Equal(t, "x y", TextCell("x y").String())
}

func TestCompareClassRanking(t *testing.T) {
	// none < bool < numbers < text
	ranked := []Cell{None, BoolCell(true), I32Cell(5), TextCell("a")}
	for i := 0; i < len(ranked)-1; i++ {
		assert.Negative(t, ranked[i].Compare(ranked[i+1]))
		assert.Positive(t, ranked[i+1].Compare(ranked[i]))
	}
	assert.Zero(t, None.Compare(None))
}

func TestCompareSameKind(t *testing.T) {
	assert.Negative(t, I32Cell(3).Compare(I32Cell(7)))
	assert.Zero(t, I32Cell(7).Compare(I32Cell(7)))
	assert.Negative(t, TextCell("APR").Compare(TextCell("AUG")))
	assert.Negative(t, BoolCell(false).Compare(BoolCell(true)))
	assert.Positive(t, F64Cell(1.5).Compare(F64Cell(-1.5)))
}

func TestCompareCrossNumeric(t *testing.T) {
	// Numbers compare by value regardless of their kind.
	assert.Zero(t, I32Cell(5).Compare(U32Cell(5)))
	assert.Positive(t, U32Cell(5).Compare(I32Cell(3)))
	assert.Negative(t, I32Cell(-1).Compare(U32Cell(0)))
	assert.Negative(t, IntCell(-1).Compare(UintCell(0)))
	assert.Positive(t, UintCell(0).Compare(IntCell(-1)))
	assert.Zero(t, IntCell(12).Compare(I32Cell(12)))
	assert.Negative(t, I32Cell(2).Compare(F32Cell(2.5)))
	assert.Positive(t, F64Cell(2.5).Compare(I32Cell(2)))
	assert.Zero(t, F32Cell(2.5).Compare(F64Cell(2.5)))

	// Huge unsigned values stay exact against signed ones.
	assert.Positive(t, UintCell(math.MaxUint64).Compare(IntCell(math.MaxInt64)))
}

func TestCompareIsAntisymmetric(t *testing.T) {
	cells := []Cell{
		None, BoolCell(false), BoolCell(true),
		I32Cell(-3), U32Cell(0), IntCell(7), UintCell(9),
		F32Cell(1.5), F64Cell(-2.5), F64Cell(math.NaN()),
		TextCell(""), TextCell("z"),
	}
	for _, a := range cells {
		for _, b := range cells {
			assert.Equal(t, a.Compare(b), -b.Compare(a), "%v vs %v", a, b)
		}
	}
}

func TestCompareNaNIsOrdered(t *testing.T) {
	nan := F64Cell(math.NaN())
	assert.Zero(t, nan.Compare(nan))
	// Positive NaN sits above positive infinity in the total order.
	assert.Positive(t, nan.Compare(F64Cell(math.Inf(1))))
	assert.Negative(t, F64Cell(math.Inf(-1)).Compare(nan))
}

func TestCompareSortsMixedCells(t *testing.T) {
	cells := []Cell{
		TextCell("b"), F32Cell(0.5), None, I32Cell(2),
		BoolCell(true), U32Cell(1), TextCell("a"),
	}
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Compare(cells[j]) < 0
	})
	want := []Cell{
		None, BoolCell(true), F32Cell(0.5), U32Cell(1),
		I32Cell(2), TextCell("a"), TextCell("b"),
	}
	assert.Equal(t, want, cells)
}
