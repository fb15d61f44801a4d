package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferPriority(t *testing.T) {
	null := "<null>"

	// All-"0"/"1" infers as integer, not boolean.
	col := Infer([]string{"1", "0", "1"}, null)
	assert.Equal(t, KindI32, col.Kind())

	col = Infer([]string{"true", "false"}, null)
	assert.Equal(t, KindBool, col.Kind())

	col = Infer([]string{"1", "2.5"}, null)
	assert.Equal(t, KindF32, col.Kind())

	col = Infer([]string{"JAN", "FEB"}, null)
	assert.Equal(t, KindText, col.Kind())

	// A value past int32 but within uint32 lands in u32.
	col = Infer([]string{"3000000000"}, null)
	assert.Equal(t, KindU32, col.Kind())

	// Negative values skip the unsigned kinds.
	col = Infer([]string{"-1", "2"}, null)
	assert.Equal(t, KindI32, col.Kind())

	// Nulls are compatible with every kind and do not force text.
	col = Infer([]string{"4", "", "<null>"}, null)
	assert.Equal(t, KindI32, col.Kind())
	_, ok := col.DataRef(1)
	require.True(t, ok)
	cell, _ := col.DataRef(2)
	assert.True(t, cell.IsNone())
}

func TestParseKindStrict(t *testing.T) {
	_, ok := ParseKind([]string{"1", "x"}, KindI32, "<null>")
	assert.False(t, ok)

	col, ok := ParseKind([]string{"1", ""}, KindI32, "<null>")
	require.True(t, ok)
	assert.Equal(t, 2, col.Len())

	// Custom null tokens are honored.
	col, ok = ParseKind([]string{"1", "N/A"}, KindI32, "N/A")
	require.True(t, ok)
	cell, _ := col.DataRef(1)
	assert.True(t, cell.IsNone())

	// Boolean parsing is strict: no "1"/"t"/"TRUE" forms.
	_, ok = ParseKind([]string{"TRUE"}, KindBool, "<null>")
	assert.False(t, ok)
}

func TestParseKindFloatOverflow(t *testing.T) {
	col, ok := ParseKind([]string{"1e99"}, KindF32, "<null>")
	require.True(t, ok)
	cell, _ := col.DataRef(0)
	assert.Equal(t, KindF32, cell.Kind())
}

func TestConvertColRetypes(t *testing.T) {
	col := NewI32(1, 2, 3)
	col.SetHeader("n")

	toText := col.ConvertCol(KindText)
	assert.Equal(t, KindText, toText.Kind())
	label, ok := toText.Label()
	require.True(t, ok)
	assert.Equal(t, "n", label)
	cell, _ := toText.DataRef(0)
	assert.Equal(t, TextCell("1"), cell)

	toF64 := col.ConvertCol(KindF64)
	cell, _ = toF64.DataRef(2)
	assert.Equal(t, F64Cell(3), cell)
}

func TestConvertColBestEffort(t *testing.T) {
	col := NewText("12", "abc", "7")
	out := col.ConvertCol(KindI32)
	require.Equal(t, 3, out.Len())

	cell, _ := out.DataRef(0)
	assert.Equal(t, I32Cell(12), cell)
	cell, _ = out.DataRef(1)
	assert.True(t, cell.IsNone())
	cell, _ = out.DataRef(2)
	assert.Equal(t, I32Cell(7), cell)
}

func TestConvertColSameKindClones(t *testing.T) {
	col := NewText("", "x")
	out := col.ConvertCol(KindText)

	// A present empty string survives a same-kind conversion.
	cell, ok := out.DataRef(0)
	require.True(t, ok)
	assert.Equal(t, TextCell(""), cell)

	out.SetPosition("y", 1, "<null>")
	v, _ := col.Get(1)
	assert.Equal(t, "x", v)
}

func TestConvertColNullsSurvive(t *testing.T) {
	col := NewI32().SetCells([]Opt[int32]{OptOf(int32(5)), {}})
	out := col.ConvertCol(KindUint)
	cell, _ := out.DataRef(0)
	assert.Equal(t, UintCell(5), cell)
	cell, _ = out.DataRef(1)
	assert.True(t, cell.IsNone())
}

func TestConvertible(t *testing.T) {
	assert.True(t, Convertible(KindI32, KindF64))
	assert.True(t, Convertible(KindBool, KindI32))
	assert.True(t, Convertible(KindF32, KindText))
	assert.True(t, Convertible(KindText, KindText))
	assert.False(t, Convertible(KindText, KindI32))
	assert.False(t, Convertible(KindText, KindBool))
}
