package arrow

import "strconv"

// UnionTag identifies the concrete type of a union element. The numeric
// codes are part of the layout: they appear verbatim in the tag buffer.
type UnionTag uint8

const (
	UnionU32 UnionTag = iota
	UnionI32
	UnionUint
	UnionInt
	UnionF32
	UnionF64
	UnionBool
	UnionText
	UnionNull
)

// String returns a short name for the tag.
func (t UnionTag) String() string {
	switch t {
	case UnionU32:
		return "u32"
	case UnionI32:
		return "i32"
	case UnionUint:
		return "uint"
	case UnionInt:
		return "int"
	case UnionF32:
		return "f32"
	case UnionF64:
		return "f64"
	case UnionBool:
		return "bool"
	case UnionText:
		return "text"
	case UnionNull:
		return "null"
	}
	return "unknown"
}

// Value is one decoded union element. Tag selects which field is
// meaningful; a UnionNull value carries no payload.
type Value struct {
	Tag  UnionTag
	U32  uint32
	I32  int32
	Uint uint
	Int  int
	F32  float32
	F64  float64
	Bool bool
	Text string
}

// NullValue is the null union element.
var NullValue = Value{Tag: UnionNull}

// ParseValue parses raw text into a tagged value by attempting, in
// order: uint32, int32, uint, int, float32, float64, bool, and finally
// text. The empty string and the literal "null" parse as the null
// variant. Float parses tolerate range overflow, matching a parser that
// saturates to infinity instead of failing, so oversized numerics land
// in the float variants rather than falling through to text.
func ParseValue(s string) Value {
	if s == "" || s == "null" {
		return NullValue
	}
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return Value{Tag: UnionU32, U32: uint32(v)}
	}
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return Value{Tag: UnionI32, I32: int32(v)}
	}
	if v, err := strconv.ParseUint(s, 10, strconv.IntSize); err == nil {
		return Value{Tag: UnionUint, Uint: uint(v)}
	}
	if v, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
		return Value{Tag: UnionInt, Int: int(v)}
	}
	if v, err := strconv.ParseFloat(s, 32); err == nil || floatOverflow(err) {
		return Value{Tag: UnionF32, F32: float32(v)}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil || floatOverflow(err) {
		return Value{Tag: UnionF64, F64: v}
	}
	if s == "true" {
		return Value{Tag: UnionBool, Bool: true}
	}
	if s == "false" {
		return Value{Tag: UnionBool, Bool: false}
	}
	return Value{Tag: UnionText, Text: s}
}

func floatOverflow(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// UnionBuilder accumulates values into per-type buckets while recording
// each logical position's tag and its offset within the bucket.
type UnionBuilder struct {
	tags    []UnionTag
	offsets []int

	u32s  []uint32
	i32s  []int32
	uints []uint
	ints  []int
	f32s  []float32
	f64s  []float64
	bools []bool
	texts []string
}

// Append records one tagged value.
func (b *UnionBuilder) Append(v Value) {
	var off int
	switch v.Tag {
	case UnionU32:
		off = len(b.u32s)
		b.u32s = append(b.u32s, v.U32)
	case UnionI32:
		off = len(b.i32s)
		b.i32s = append(b.i32s, v.I32)
	case UnionUint:
		off = len(b.uints)
		b.uints = append(b.uints, v.Uint)
	case UnionInt:
		off = len(b.ints)
		b.ints = append(b.ints, v.Int)
	case UnionF32:
		off = len(b.f32s)
		b.f32s = append(b.f32s, v.F32)
	case UnionF64:
		off = len(b.f64s)
		b.f64s = append(b.f64s, v.F64)
	case UnionBool:
		off = len(b.bools)
		b.bools = append(b.bools, v.Bool)
	case UnionText:
		off = len(b.texts)
		b.texts = append(b.texts, v.Text)
	case UnionNull:
		off = 0
	}
	b.tags = append(b.tags, v.Tag)
	b.offsets = append(b.offsets, off)
}

// AppendText parses raw text and records the result.
func (b *UnionBuilder) AppendText(s string) {
	b.Append(ParseValue(s))
}

// Build materializes the accumulated buckets into a Union. Empty
// buckets stay absent.
func (b *UnionBuilder) Build() *Union {
	u := &Union{tags: b.tags, offsets: b.offsets}
	if len(b.u32s) > 0 {
		u.u32s = NewFixed(b.u32s, nil)
	}
	if len(b.i32s) > 0 {
		u.i32s = NewFixed(b.i32s, nil)
	}
	if len(b.uints) > 0 {
		u.uints = NewFixed(b.uints, nil)
	}
	if len(b.ints) > 0 {
		u.ints = NewFixed(b.ints, nil)
	}
	if len(b.f32s) > 0 {
		u.f32s = NewFixed(b.f32s, nil)
	}
	if len(b.f64s) > 0 {
		u.f64s = NewFixed(b.f64s, nil)
	}
	if len(b.bools) > 0 {
		u.bools = NewFixed(b.bools, nil)
	}
	if len(b.texts) > 0 {
		u.texts = NewText(b.texts, nil)
	}
	return u
}

// Union is a dense-union array: a per-element tag buffer, a per-element
// offset into the matching type bucket, and one optional sub-array per
// concrete type. A null tag never dereferences a bucket.
type Union struct {
	tags    []UnionTag
	offsets []int

	u32s  *U32Array
	i32s  *I32Array
	uints *UintArray
	ints  *IntArray
	f32s  *F32Array
	f64s  *F64Array
	bools *BoolArray
	texts *Text
}

// Len returns the logical element count.
func (u *Union) Len() int { return len(u.tags) }

// Tag returns the tag of element i, or UnionNull and ok=false when i is
// out of range.
func (u *Union) Tag(i int) (UnionTag, bool) {
	if i < 0 || i >= len(u.tags) {
		return UnionNull, false
	}
	return u.tags[i], true
}

// Get returns the decoded element at i, or ok=false when i is out of
// range. An in-range null element returns NullValue with ok=true.
func (u *Union) Get(i int) (Value, bool) {
	if i < 0 || i >= len(u.tags) {
		return NullValue, false
	}
	off := u.offsets[i]
	switch u.tags[i] {
	case UnionU32:
		v, _ := u.u32s.Get(off)
		return Value{Tag: UnionU32, U32: v}, true
	case UnionI32:
		v, _ := u.i32s.Get(off)
		return Value{Tag: UnionI32, I32: v}, true
	case UnionUint:
		v, _ := u.uints.Get(off)
		return Value{Tag: UnionUint, Uint: v}, true
	case UnionInt:
		v, _ := u.ints.Get(off)
		return Value{Tag: UnionInt, Int: v}, true
	case UnionF32:
		v, _ := u.f32s.Get(off)
		return Value{Tag: UnionF32, F32: v}, true
	case UnionF64:
		v, _ := u.f64s.Get(off)
		return Value{Tag: UnionF64, F64: v}, true
	case UnionBool:
		v, _ := u.bools.Get(off)
		return Value{Tag: UnionBool, Bool: v}, true
	case UnionText:
		v, _ := u.texts.Get(off)
		return Value{Tag: UnionText, Text: v}, true
	}
	return NullValue, true
}

// Equal compares the tag buffer, the offset buffer, and every
// sub-array, absent buckets included.
func (u *Union) Equal(o *Union) bool {
	if len(u.tags) != len(o.tags) {
		return false
	}
	for i := range u.tags {
		if u.tags[i] != o.tags[i] || u.offsets[i] != o.offsets[i] {
			return false
		}
	}
	return fixedEq(u.u32s, o.u32s) &&
		fixedEq(u.i32s, o.i32s) &&
		fixedEq(u.uints, o.uints) &&
		fixedEq(u.ints, o.ints) &&
		fixedEq(u.f32s, o.f32s) &&
		fixedEq(u.f64s, o.f64s) &&
		fixedEq(u.bools, o.bools) &&
		textEq(u.texts, o.texts)
}

func fixedEq[T Scalar](a, b *Fixed[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}

func textEq(a, b *Text) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}
