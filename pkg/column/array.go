package column

// Array is the concrete column representation shared by every kind:
// an optional header plus one Opt slot per cell. The parse and cell
// functions fix the element type's behavior at construction.
type Array[T any] struct {
	header  string
	labeled bool
	cells   []Opt[T]

	kind  Kind
	parse func(string) (T, error)
	cell  func(T) Cell
}

// Concrete column types, one per supported kind.
type (
	ArrayText = Array[string]
	ArrayI32  = Array[int32]
	ArrayU32  = Array[uint32]
	ArrayInt  = Array[int]
	ArrayUint = Array[uint]
	ArrayF32  = Array[float32]
	ArrayF64  = Array[float64]
	ArrayBool = Array[bool]
)

func newArray[T any](kind Kind, parse func(string) (T, error), cell func(T) Cell, values []T) *Array[T] {
	a := &Array[T]{kind: kind, parse: parse, cell: cell}
	if len(values) > 0 {
		a.cells = make([]Opt[T], 0, len(values))
		for _, v := range values {
			a.cells = append(a.cells, OptOf(v))
		}
	}
	return a
}

// NewText builds a text column from present values.
func NewText(values ...string) *ArrayText {
	return newArray(KindText, parseText, TextCell, values)
}

// NewI32 builds a 32-bit signed integer column from present values.
func NewI32(values ...int32) *ArrayI32 {
	return newArray(KindI32, parseI32, I32Cell, values)
}

// NewU32 builds a 32-bit unsigned integer column from present values.
func NewU32(values ...uint32) *ArrayU32 {
	return newArray(KindU32, parseU32, U32Cell, values)
}

// NewInt builds a word-sized signed integer column from present values.
func NewInt(values ...int) *ArrayInt {
	return newArray(KindInt, parseInt, IntCell, values)
}

// NewUint builds a word-sized unsigned integer column from present values.
func NewUint(values ...uint) *ArrayUint {
	return newArray(KindUint, parseUint, UintCell, values)
}

// NewF32 builds a 32-bit float column from present values.
func NewF32(values ...float32) *ArrayF32 {
	return newArray(KindF32, parseF32, F32Cell, values)
}

// NewF64 builds a 64-bit float column from present values.
func NewF64(values ...float64) *ArrayF64 {
	return newArray(KindF64, parseF64, F64Cell, values)
}

// NewBool builds a boolean column from present values.
func NewBool(values ...bool) *ArrayBool {
	return newArray(KindBool, parseBool, BoolCell, values)
}

// SetCells replaces the column's cells wholesale, nulls included.
func (a *Array[T]) SetCells(cells []Opt[T]) *Array[T] {
	a.cells = cells
	return a
}

// Get returns the value at idx, or ok=false when idx is out of range
// or the cell is null.
func (a *Array[T]) Get(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(a.cells) || !a.cells[idx].Valid {
		return zero, false
	}
	return a.cells[idx].Value, true
}

// Cells returns the column's slots for bulk export. The slice is the
// column's own storage and must not be mutated.
func (a *Array[T]) Cells() []Opt[T] { return a.cells }

// Label returns the header label, if any.
func (a *Array[T]) Label() (string, bool) { return a.header, a.labeled }

// Kind returns the column's data type.
func (a *Array[T]) Kind() Kind { return a.kind }

// Len returns the number of cells, null cells included.
func (a *Array[T]) Len() int { return len(a.cells) }

// IsEmpty reports whether the column has no cells.
func (a *Array[T]) IsEmpty() bool { return len(a.cells) == 0 }

// SetHeader sets the header label.
func (a *Array[T]) SetHeader(header string) {
	a.header = header
	a.labeled = true
}

// DataRef returns the cell at idx; false only for out-of-range.
func (a *Array[T]) DataRef(idx int) (Cell, bool) {
	if idx < 0 || idx >= len(a.cells) {
		return None, false
	}
	if !a.cells[idx].Valid {
		return None, true
	}
	return a.cell(a.cells[idx].Value), true
}

// SetPosition overwrites the cell at idx with the parsed value. Parse
// failure changes nothing and returns false. An out-of-range idx with
// a parseable value returns true; the sheet has already bounds-checked.
func (a *Array[T]) SetPosition(value string, idx int, null string) bool {
	parsed, err := parseOpt(value, null, a.parse)
	if err != nil {
		return false
	}
	if idx < 0 || idx >= len(a.cells) {
		return true
	}
	a.cells[idx] = parsed
	return true
}

// Swap exchanges the cells at x and y. No-op on a bad index.
func (a *Array[T]) Swap(x, y int) {
	if x < 0 || y < 0 || x >= len(a.cells) || y >= len(a.cells) {
		return
	}
	a.cells[x], a.cells[y] = a.cells[y], a.cells[x]
}

// Clear nulls the cell at idx.
func (a *Array[T]) Clear(idx int) {
	if idx < 0 || idx >= len(a.cells) {
		return
	}
	a.cells[idx] = Opt[T]{}
}

// ClearAll nulls every cell, keeping the length.
func (a *Array[T]) ClearAll() {
	for i := range a.cells {
		a.cells[i] = Opt[T]{}
	}
}

// Clone deep-copies the column.
func (a *Array[T]) Clone() Column {
	c := &Array[T]{
		header:  a.header,
		labeled: a.labeled,
		kind:    a.kind,
		parse:   a.parse,
		cell:    a.cell,
	}
	if a.cells != nil {
		c.cells = make([]Opt[T], len(a.cells))
		copy(c.cells, a.cells)
	}
	return c
}

// Push appends the parsed value, appending null on parse failure.
func (a *Array[T]) Push(value, null string) {
	parsed, err := parseOpt(value, null, a.parse)
	if err != nil {
		parsed = Opt[T]{}
	}
	a.cells = append(a.cells, parsed)
}

// Insert inserts the parsed value at idx. Parse failure inserts null.
func (a *Array[T]) Insert(value string, idx int, null string) {
	if idx < 0 || idx > len(a.cells) {
		return
	}
	parsed, err := parseOpt(value, null, a.parse)
	if err != nil {
		parsed = Opt[T]{}
	}
	a.cells = append(a.cells, Opt[T]{})
	copy(a.cells[idx+1:], a.cells[idx:])
	a.cells[idx] = parsed
}

// Remove deletes the cell at idx.
func (a *Array[T]) Remove(idx int) {
	if idx < 0 || idx >= len(a.cells) {
		return
	}
	a.cells = append(a.cells[:idx], a.cells[idx+1:]...)
}

// RemoveAll deletes every cell.
func (a *Array[T]) RemoveAll() {
	a.cells = nil
}

// ApplyIndexSwap executes a resolved swap chain over the cells.
func (a *Array[T]) ApplyIndexSwap(indices []int) {
	for pos, elem := range indices {
		a.cells[pos], a.cells[elem] = a.cells[elem], a.cells[pos]
	}
}

// ConvertCol re-types the column by rendering every present cell to
// its string form and re-parsing against the target kind. Failing
// cells become null; converting to the column's own kind clones.
func (a *Array[T]) ConvertCol(to Kind) Column {
	if to == a.kind {
		return a.Clone()
	}
	out := NewOfKind(to)
	for _, slot := range a.cells {
		if !slot.Valid {
			out.Push("", "")
			continue
		}
		out.Push(a.cell(slot.Value).String(), "")
	}
	if a.labeled {
		out.SetHeader(a.header)
	}
	return out
}
