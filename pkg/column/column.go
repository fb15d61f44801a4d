package column

// Column is the capability interface every typed column implements.
// Reads are three-state: DataRef distinguishes out-of-range from an
// in-range null cell.
//
// The structural mutators after Clone are reserved for the owning
// sheet, which validates bounds and cardinality once for the whole
// table. The leaf implementations are deliberately lenient (a bad
// index is a silent no-op) and must not be driven directly.
type Column interface {
	// Label returns the header label, if one is set.
	Label() (string, bool)

	// Kind returns the type of data within the column.
	Kind() Kind

	// Len returns the number of cells. Null cells count.
	Len() int

	// IsEmpty reports whether the column has no cells.
	IsEmpty() bool

	// SetHeader sets the header label.
	SetHeader(header string)

	// DataRef returns the cell at idx. The second return is false only
	// for out-of-range; an in-range null cell yields the None cell.
	DataRef(idx int) (Cell, bool)

	// SetPosition overwrites the cell at idx with the parsed value,
	// returning false and leaving the cell alone on parse failure. The
	// null token parses to the null cell.
	SetPosition(value string, idx int, null string) bool

	// Swap exchanges the cells at x and y. No-op on a bad index.
	Swap(x, y int)

	// Clear discards the cell at idx, leaving null in its place.
	Clear(idx int)

	// ClearAll replaces every cell with null.
	ClearAll()

	// ConvertCol re-types the column by re-parsing every cell's string
	// form. Cells that fail the target parse become null; the header
	// carries over. Never fails.
	ConvertCol(to Kind) Column

	// Clone deep-copies the column.
	Clone() Column

	// Push appends the parsed value, appending null on parse failure.
	Push(value, null string)

	// Insert inserts the parsed value at idx, shifting later cells
	// right. Parse failure inserts null; a bad index is a no-op.
	Insert(value string, idx int, null string)

	// Remove deletes the cell at idx, shifting later cells left.
	Remove(idx int)

	// RemoveAll deletes every cell.
	RemoveAll()

	// ApplyIndexSwap executes a resolved swap chain: for each position
	// p in order, the cells at p and indices[p] are exchanged.
	ApplyIndexSwap(indices []int)
}

// Header pairs a column's optional label with its kind.
type Header struct {
	Label   string
	Labeled bool
	Kind    Kind
}
