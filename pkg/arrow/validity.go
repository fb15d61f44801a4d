package arrow

// Validity tracks per-element presence with one bit per element,
// 1 = present, 0 = null, packed 8 per byte.
//
// The bitmap buffer is elided in the two uniform states: when every
// element is present (nulls == 0) and when every element is null
// (nulls == len). The null counter distinguishes the two, so the three
// logical states are all-present, all-null, and mixed-with-bitmap.
type Validity struct {
	bits  []byte
	nulls int
	len   int
}

// NewValidity builds a validity bitmap from a presence mask. A nil mask
// means every element of length n is present.
func NewValidity(n int, present []bool) Validity {
	if present == nil {
		return Validity{len: n}
	}
	nulls := 0
	for _, p := range present {
		if !p {
			nulls++
		}
	}
	v := Validity{nulls: nulls, len: n}
	if nulls == 0 || nulls == n {
		return v
	}
	v.bits = make([]byte, (n+7)/8)
	for i, p := range present {
		if p {
			v.bits[i/8] |= 1 << (i % 8)
		}
	}
	return v
}

// AllNullValidity returns the all-null state for n elements.
func AllNullValidity(n int) Validity {
	return Validity{nulls: n, len: n}
}

// Len returns the logical element count.
func (v Validity) Len() int { return v.len }

// Nulls returns the number of null elements.
func (v Validity) Nulls() int { return v.nulls }

// AllNull reports whether every element is null. Vacuously true for an
// empty validity.
func (v Validity) AllNull() bool { return v.nulls == v.len }

// AllPresent reports whether no element is null.
func (v Validity) AllPresent() bool { return v.nulls == 0 }

// Null reports whether element i is null. Panics if i is out of range;
// bounds are the caller's contract.
func (v Validity) Null(i int) bool {
	if i < 0 || i >= v.len {
		panic("arrow: validity index out of range")
	}
	if v.bits == nil {
		return v.nulls == v.len
	}
	return v.bits[i/8]&(1<<(i%8)) == 0
}

// Equal compares length, null count, and the packed bitmap bytes.
func (v Validity) Equal(o Validity) bool {
	if v.len != o.len || v.nulls != o.nulls {
		return false
	}
	if len(v.bits) != len(o.bits) {
		return false
	}
	for i := range v.bits {
		if v.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}

// Clone deep-copies the bitmap, preserving buffer elision.
func (v Validity) Clone() Validity {
	c := Validity{nulls: v.nulls, len: v.len}
	if v.bits != nil {
		c.bits = make([]byte, len(v.bits))
		copy(c.bits, v.bits)
	}
	return c
}
