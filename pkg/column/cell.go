package column

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

// Cell is one decoded cell value, the unit of table-layer reads and of
// cross-type sort comparisons. The zero value is the null cell.
type Cell struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	b    bool
	s    string
}

// None is the null cell.
var None = Cell{}

// TextCell wraps a text value.
func TextCell(s string) Cell { return Cell{kind: KindText, s: s} }

// I32Cell wraps a 32-bit signed integer.
func I32Cell(v int32) Cell { return Cell{kind: KindI32, i: int64(v)} }

// U32Cell wraps a 32-bit unsigned integer.
func U32Cell(v uint32) Cell { return Cell{kind: KindU32, u: uint64(v)} }

// IntCell wraps a word-sized signed integer.
func IntCell(v int) Cell { return Cell{kind: KindInt, i: int64(v)} }

// UintCell wraps a word-sized unsigned integer.
func UintCell(v uint) Cell { return Cell{kind: KindUint, u: uint64(v)} }

// F32Cell wraps a 32-bit float.
func F32Cell(v float32) Cell { return Cell{kind: KindF32, f: float64(v)} }

// F64Cell wraps a 64-bit float.
func F64Cell(v float64) Cell { return Cell{kind: KindF64, f: v} }

// BoolCell wraps a boolean.
func BoolCell(v bool) Cell { return Cell{kind: KindBool, b: v} }

// Kind returns the cell's kind, KindNone for the null cell.
func (c Cell) Kind() Kind { return c.kind }

// IsNone reports whether the cell is null.
func (c Cell) IsNone() bool { return c.kind == KindNone }

// Text returns the text payload. Valid only for KindText.
func (c Cell) Text() string { return c.s }

// I32 returns the payload of a KindI32 cell.
func (c Cell) I32() int32 { return int32(c.i) }

// U32 returns the payload of a KindU32 cell.
func (c Cell) U32() uint32 { return uint32(c.u) }

// Int returns the payload of a KindInt cell.
func (c Cell) Int() int { return int(c.i) }

// Uint returns the payload of a KindUint cell.
func (c Cell) Uint() uint { return uint(c.u) }

// F32 returns the payload of a KindF32 cell.
func (c Cell) F32() float32 { return float32(c.f) }

// F64 returns the payload of a KindF64 cell.
func (c Cell) F64() float64 { return c.f }

// Bool returns the payload of a KindBool cell.
func (c Cell) Bool() bool { return c.b }

// String renders the cell for display and re-parsing. The null cell
// renders as the empty string; callers substitute their null token.
func (c Cell) String() string {
	switch c.kind {
	case KindText:
		return c.s
	case KindI32, KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindU32, KindUint:
		return strconv.FormatUint(c.u, 10)
	case KindF32:
		return strconv.FormatFloat(c.f, 'g', -1, 32)
	case KindF64:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.b)
	}
	return ""
}

// comparison classes, lowest sorts first
const (
	classNone = iota
	classBool
	classNumber
	classText
)

func (c Cell) class() int {
	switch c.kind {
	case KindNone:
		return classNone
	case KindBool:
		return classBool
	case KindText:
		return classText
	}
	return classNumber
}

func (c Cell) isFloat() bool { return c.kind == KindF32 || c.kind == KindF64 }

func (c Cell) isUnsigned() bool { return c.kind == KindU32 || c.kind == KindUint }

func (c Cell) asF64() float64 {
	switch c.kind {
	case KindF32, KindF64:
		return c.f
	case KindU32, KindUint:
		return float64(c.u)
	}
	return float64(c.i)
}

// Compare imposes a total order over cells for sorting: null sorts
// below booleans, booleans below numbers, numbers below text. Numbers
// compare by value across the integer and float kinds, integers
// exactly and any float pairing through the IEEE-754 total order, so
// NaN is ordered rather than poisoning the sort. Returns -1, 0 or 1.
func (c Cell) Compare(o Cell) int {
	cc, oc := c.class(), o.class()
	if cc != oc {
		return cmp.Compare(cc, oc)
	}
	switch cc {
	case classNone:
		return 0
	case classBool:
		if c.b == o.b {
			return 0
		}
		if !c.b {
			return -1
		}
		return 1
	case classText:
		return strings.Compare(c.s, o.s)
	}
	if c.isFloat() || o.isFloat() {
		return totalCmp(c.asF64(), o.asF64())
	}
	return cmpInteger(c, o)
}

func cmpInteger(a, b Cell) int {
	switch {
	case a.isUnsigned() && b.isUnsigned():
		return cmp.Compare(a.u, b.u)
	case !a.isUnsigned() && !b.isUnsigned():
		return cmp.Compare(a.i, b.i)
	case a.isUnsigned():
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	default:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	}
}

// totalCmp orders floats by their IEEE-754 total order: negative NaN,
// negative infinity through positive infinity, positive NaN.
func totalCmp(x, y float64) int {
	a := int64(math.Float64bits(x))
	b := int64(math.Float64bits(y))
	a ^= int64(uint64(a>>63) >> 1)
	b ^= int64(uint64(b>>63) >> 1)
	return cmp.Compare(a, b)
}
