package arrow

import (
	"strings"

	tbstrings "github.com/tabulago/tabula/pkg/strings"
)

// Text is a variable-width string array: a concatenated byte buffer, an
// offsets buffer of len+1 entries where element i occupies byte range
// [offsets[i], offsets[i+1]), and a validity bitmap.
//
// In the true all-null state every buffer is elided. When the total byte
// length is zero but some elements are present, the offsets and bitmap
// are kept so an empty present string stays distinct from null; only the
// byte buffer is empty.
type Text struct {
	bytes   []byte
	offsets []uint64
	valid   Validity
}

// NewText builds an array from values and a presence mask. A nil mask
// means all present. Null slots contribute zero-length byte ranges.
func NewText(values []string, present []bool) *Text {
	n := len(values)
	if present != nil && len(present) != n {
		panic("arrow: presence mask length mismatch")
	}
	valid := NewValidity(n, present)
	t := &Text{valid: valid}
	if valid.AllNull() {
		return t
	}

	var total uint64
	for i, s := range values {
		if present == nil || present[i] {
			total += uint64(len(s))
		}
	}

	t.offsets = make([]uint64, n+1)
	t.bytes = make([]byte, 0, total)
	for i, s := range values {
		if present == nil || present[i] {
			t.bytes = append(t.bytes, s...)
		}
		t.offsets[i+1] = uint64(len(t.bytes))
	}
	return t
}

// NewTextAllNull returns an array of n null elements with every buffer
// elided.
func NewTextAllNull(n int) *Text {
	return &Text{valid: AllNullValidity(n)}
}

// Len returns the logical element count.
func (t *Text) Len() int { return t.valid.Len() }

// Nulls returns the number of null elements.
func (t *Text) Nulls() int { return t.valid.Nulls() }

// AllNull reports whether every element is null.
func (t *Text) AllNull() bool { return t.valid.AllNull() }

// TotalBytes returns the concatenated byte length of all present
// elements.
func (t *Text) TotalBytes() uint64 {
	if t.offsets == nil {
		return 0
	}
	return t.offsets[len(t.offsets)-1]
}

// GetRef returns a view of element i aliasing the byte buffer, or
// ok=false when i is out of range or the element is null. The view is
// invalidated by dropping the array.
func (t *Text) GetRef(i int) (string, bool) {
	if i < 0 || i >= t.valid.Len() || t.valid.Null(i) {
		return "", false
	}
	return tbstrings.BytesToString(t.bytes[t.offsets[i]:t.offsets[i+1]]), true
}

// Get returns an owned copy of element i.
func (t *Text) Get(i int) (string, bool) {
	s, ok := t.GetRef(i)
	if !ok {
		return "", false
	}
	return strings.Clone(s), true
}

// Null reports whether element i is null. Panics if i is out of range.
func (t *Text) Null(i int) bool { return t.valid.Null(i) }

// Equal compares length, total byte length, and null count before
// touching the bitmap, offsets, and byte buffers, cheapest first.
func (t *Text) Equal(o *Text) bool {
	if t.valid.Len() != o.valid.Len() || t.TotalBytes() != o.TotalBytes() {
		return false
	}
	if !t.valid.Equal(o.valid) {
		return false
	}
	for i := range t.offsets {
		if t.offsets[i] != o.offsets[i] {
			return false
		}
	}
	for i := range t.bytes {
		if t.bytes[i] != o.bytes[i] {
			return false
		}
	}
	return true
}

// Clone deep-copies every buffer, preserving buffer elision.
func (t *Text) Clone() *Text {
	c := &Text{valid: t.valid.Clone()}
	if t.offsets != nil {
		c.offsets = make([]uint64, len(t.offsets))
		copy(c.offsets, t.offsets)
		c.bytes = make([]byte, len(t.bytes))
		copy(c.bytes, t.bytes)
	}
	return c
}

// Export copies the array out as a string slice plus a presence mask.
// The mask is nil when every element is present.
func (t *Text) Export() ([]string, []bool) {
	n := t.valid.Len()
	values := make([]string, n)
	for i := 0; i < n; i++ {
		values[i], _ = t.Get(i)
	}
	if t.valid.AllPresent() {
		return values, nil
	}
	present := make([]bool, n)
	for i := 0; i < n; i++ {
		present[i] = !t.valid.Null(i)
	}
	return values, present
}
