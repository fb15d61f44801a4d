package arrow

// Scalar is the set of fixed-width element types.
type Scalar interface {
	~int32 | ~uint32 | ~int | ~uint | ~float32 | ~float64 | ~bool
}

// Fixed is a fixed-width primitive array: a packed values buffer plus a
// validity bitmap. The values buffer is allocated iff at least one
// element is present; null slots hold the zero value as a placeholder.
type Fixed[T Scalar] struct {
	values []T
	valid  Validity
}

// NewFixed builds an array from values and a presence mask. A nil mask
// means all present. len(present), when non-nil, must equal len(values).
func NewFixed[T Scalar](values []T, present []bool) *Fixed[T] {
	n := len(values)
	if present != nil && len(present) != n {
		panic("arrow: presence mask length mismatch")
	}
	valid := NewValidity(n, present)
	a := &Fixed[T]{valid: valid}
	if valid.AllNull() {
		return a
	}
	a.values = make([]T, n)
	for i, v := range values {
		if present == nil || present[i] {
			a.values[i] = v
		}
	}
	return a
}

// NewFixedAllNull returns an array of n null elements with both buffers
// elided.
func NewFixedAllNull[T Scalar](n int) *Fixed[T] {
	return &Fixed[T]{valid: AllNullValidity(n)}
}

// Len returns the logical element count.
func (a *Fixed[T]) Len() int { return a.valid.Len() }

// Nulls returns the number of null elements.
func (a *Fixed[T]) Nulls() int { return a.valid.Nulls() }

// AllNull reports whether every element is null.
func (a *Fixed[T]) AllNull() bool { return a.valid.AllNull() }

// Get returns the element at i, or ok=false when i is out of range or
// the element is null.
func (a *Fixed[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= a.valid.Len() || a.valid.Null(i) {
		return zero, false
	}
	return a.values[i], true
}

// Null reports whether element i is null. Panics if i is out of range.
func (a *Fixed[T]) Null(i int) bool { return a.valid.Null(i) }

// Equal compares lengths, null counts, bitmaps, then values element by
// element through Get, so null placeholders never participate and NaN
// keeps IEEE-754 inequality.
func (a *Fixed[T]) Equal(o *Fixed[T]) bool {
	if !a.valid.Equal(o.valid) {
		return false
	}
	for i := 0; i < a.valid.Len(); i++ {
		av, aok := a.Get(i)
		ov, ook := o.Get(i)
		if aok != ook || av != ov {
			return false
		}
	}
	return true
}

// Clone deep-copies both buffers, preserving buffer elision.
func (a *Fixed[T]) Clone() *Fixed[T] {
	c := &Fixed[T]{valid: a.valid.Clone()}
	if a.values != nil {
		c.values = make([]T, len(a.values))
		copy(c.values, a.values)
	}
	return c
}

// Export copies the array out as a values slice plus a presence mask.
// The mask is nil when every element is present.
func (a *Fixed[T]) Export() ([]T, []bool) {
	n := a.valid.Len()
	values := make([]T, n)
	copy(values, a.values)
	if a.valid.AllPresent() {
		return values, nil
	}
	present := make([]bool, n)
	for i := 0; i < n; i++ {
		present[i] = !a.valid.Null(i)
	}
	return values, present
}

// Convenience aliases matching the supported column kinds.
type (
	I32Array  = Fixed[int32]
	U32Array  = Fixed[uint32]
	IntArray  = Fixed[int]
	UintArray = Fixed[uint]
	F32Array  = Fixed[float32]
	F64Array  = Fixed[float64]
	BoolArray = Fixed[bool]
)
