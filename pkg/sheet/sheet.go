package sheet

import (
	"github.com/tabulago/tabula/pkg/column"
	"github.com/tabulago/tabula/pkg/errors"
)

// Sheet is a table of typed columns. Every column has the same height,
// and the primary index is unset only while the sheet has no columns.
type Sheet struct {
	columns []column.Column
	primary int
	null    string
}

// New returns an empty sheet using the default null token.
func New() *Sheet {
	return &Sheet{primary: -1, null: DefaultNullToken}
}

// NullToken returns the null token threaded through every parse path.
func (s *Sheet) NullToken() string { return s.null }

// Width returns the number of columns.
func (s *Sheet) Width() int { return len(s.columns) }

// Height returns the shared column height.
func (s *Sheet) Height() int {
	if len(s.columns) == 0 {
		return 0
	}
	return s.columns[0].Len()
}

// IsEmpty reports whether the sheet holds no rows. A sheet that kept
// its columns but lost every row is empty here while TrueIsEmpty still
// reports false.
func (s *Sheet) IsEmpty() bool { return s.Height() == 0 }

// TrueIsEmpty reports whether the sheet holds no columns at all.
func (s *Sheet) TrueIsEmpty() bool { return len(s.columns) == 0 }

// Primary returns the primary column index, if set.
func (s *Sheet) Primary() (int, bool) {
	if s.primary < 0 {
		return 0, false
	}
	return s.primary, true
}

// SetPrimary designates the primary column.
func (s *Sheet) SetPrimary(primary int) error {
	if primary < 0 || primary >= s.Width() {
		return errors.Newf(errors.ErrorTypePrimary,
			"primary column %d out of range (width %d)", primary, s.Width())
	}
	s.primary = primary
	return nil
}

// ClearPrimary unsets the primary column.
func (s *Sheet) ClearPrimary() { s.primary = -1 }

// Headers returns every column's label and kind in column order.
func (s *Sheet) Headers() []column.Header {
	headers := make([]column.Header, 0, len(s.columns))
	for _, col := range s.columns {
		label, labeled := col.Label()
		headers = append(headers, column.Header{
			Label:   label,
			Labeled: labeled,
			Kind:    col.Kind(),
		})
	}
	return headers
}

// SetColHeader sets the header of the column at col.
func (s *Sheet) SetColHeader(col int, header string) error {
	if col < 0 || col >= s.Width() {
		return s.colRange(col)
	}
	s.columns[col].SetHeader(header)
	return nil
}

// GetCol returns the column at idx.
func (s *Sheet) GetCol(idx int) (column.Column, bool) {
	if idx < 0 || idx >= len(s.columns) {
		return nil, false
	}
	return s.columns[idx], true
}

// GetCell returns the cell at (col, row). The second return is false
// when either index is out of range; an in-range null cell is the None
// cell.
func (s *Sheet) GetCell(col, row int) (column.Cell, bool) {
	if col < 0 || col >= len(s.columns) {
		return column.None, false
	}
	return s.columns[col].DataRef(row)
}

// GetRow returns the cells of the row at idx in column order.
func (s *Sheet) GetRow(idx int) ([]column.Cell, bool) {
	if idx < 0 || idx >= s.Height() {
		return nil, false
	}
	row := make([]column.Cell, 0, len(s.columns))
	for _, col := range s.columns {
		cell, _ := col.DataRef(idx)
		row = append(row, cell)
	}
	return row, true
}

// SetCell parses value against the column's type and overwrites the
// cell at (col, row). Bounds are validated before the write, and a
// parse failure is reported distinctly.
func (s *Sheet) SetCell(value string, col, row int) error {
	if col < 0 || col >= s.Width() {
		return s.colRange(col)
	}
	if row < 0 || row >= s.Height() {
		return s.rowRange(row)
	}
	if !s.columns[col].SetPosition(value, row, s.null) {
		return errors.Newf(errors.ErrorTypeParse,
			"%q does not parse as %s (column %d)", value, s.columns[col].Kind(), col)
	}
	return nil
}

// ClearCell nulls the cell at (col, row).
func (s *Sheet) ClearCell(col, row int) error {
	if col < 0 || col >= s.Width() {
		return s.colRange(col)
	}
	if row < 0 || row >= s.Height() {
		return s.rowRange(row)
	}
	s.columns[col].Clear(row)
	return nil
}

// ClearCol nulls every cell of the column at idx.
func (s *Sheet) ClearCol(idx int) error {
	if idx < 0 || idx >= s.Width() {
		return s.colRange(idx)
	}
	s.columns[idx].ClearAll()
	return nil
}

// ClearRow nulls every cell of the row at idx.
func (s *Sheet) ClearRow(idx int) error {
	if idx < 0 || idx >= s.Height() {
		return s.rowRange(idx)
	}
	for _, col := range s.columns {
		col.Clear(idx)
	}
	return nil
}

// InsertCol inserts a column at idx, shifting later columns right. The
// column's height must match the sheet's unless the sheet has no
// columns yet. The primary index keeps tracking the same logical
// column.
func (s *Sheet) InsertCol(col column.Column, idx int) error {
	if idx < 0 || idx > s.Width() {
		return errors.Newf(errors.ErrorTypePosition,
			"column insertion at %d out of range (width %d)", idx, s.Width())
	}
	if !s.TrueIsEmpty() && col.Len() != s.Height() {
		return errors.Newf(errors.ErrorTypeLengthMismatch,
			"column height %d does not match sheet height %d", col.Len(), s.Height()).
			WithDetail("column", idx)
	}

	s.columns = append(s.columns, nil)
	copy(s.columns[idx+1:], s.columns[idx:])
	s.columns[idx] = col

	if len(s.columns) == 1 {
		s.primary = 0
		return nil
	}
	if idx <= s.primary {
		s.primary++
	}
	return nil
}

// PushCol appends a column.
func (s *Sheet) PushCol(col column.Column) error {
	return s.InsertCol(col, s.Width())
}

// RemoveCol removes the column at idx, shifting later columns left.
// Removing the primary column leaves the primary at the freed slot,
// clamped to the last column, or unset if the sheet becomes columnless.
func (s *Sheet) RemoveCol(idx int) error {
	if idx < 0 || idx >= s.Width() {
		return s.colRange(idx)
	}

	s.columns = append(s.columns[:idx], s.columns[idx+1:]...)

	switch {
	case len(s.columns) == 0:
		s.primary = -1
	case idx < s.primary:
		s.primary--
	case idx == s.primary && s.primary >= len(s.columns):
		s.primary = len(s.columns) - 1
	}
	return nil
}

// PopCol removes the last column.
func (s *Sheet) PopCol() error {
	return s.RemoveCol(s.Width() - 1)
}

// DuplicateCol clones the column at idx and inserts the copy right
// after it.
func (s *Sheet) DuplicateCol(idx int) error {
	if idx < 0 || idx >= s.Width() {
		return s.colRange(idx)
	}
	return s.InsertCol(s.columns[idx].Clone(), idx+1)
}

// RemoveAllCols empties the sheet completely.
func (s *Sheet) RemoveAllCols() {
	s.columns = nil
	s.primary = -1
}

// InsertRow parses one value per column and inserts the row at idx,
// shifting later rows down. Inserting into a columnless sheet at index
// zero bootstraps the columns by inferring types from the row itself.
// Values that fail their column's parse become null.
func (s *Sheet) InsertRow(values []string, idx int) error {
	if s.TrueIsEmpty() {
		if idx != 0 {
			return errors.Newf(errors.ErrorTypePosition,
				"row insertion at %d into a columnless sheet", idx)
		}
		for _, value := range values {
			s.columns = append(s.columns, column.Infer([]string{value}, s.null))
		}
		if len(s.columns) > 0 {
			s.primary = 0
		}
		return nil
	}

	if len(values) != s.Width() {
		return errors.Newf(errors.ErrorTypeLengthMismatch,
			"row width %d does not match sheet width %d", len(values), s.Width())
	}
	if idx < 0 || idx > s.Height() {
		return errors.Newf(errors.ErrorTypePosition,
			"row insertion at %d out of range (height %d)", idx, s.Height())
	}

	for i, col := range s.columns {
		col.Insert(values[i], idx, s.null)
	}
	return nil
}

// PushRow appends a row.
func (s *Sheet) PushRow(values []string) error {
	return s.InsertRow(values, s.Height())
}

// RemoveRow removes the row at idx, shifting later rows up.
func (s *Sheet) RemoveRow(idx int) error {
	if idx < 0 || idx >= s.Height() {
		return s.rowRange(idx)
	}
	for _, col := range s.columns {
		col.Remove(idx)
	}
	return nil
}

// PopRow removes the last row.
func (s *Sheet) PopRow() error {
	return s.RemoveRow(s.Height() - 1)
}

// RemoveAllRows drops every row, keeping the columns and their types.
func (s *Sheet) RemoveAllRows() {
	for _, col := range s.columns {
		col.RemoveAll()
	}
}

// SwapCols exchanges the columns at x and y, relocating the primary
// index if it was one of them.
func (s *Sheet) SwapCols(x, y int) error {
	if x < 0 || x >= s.Width() {
		return s.colRange(x)
	}
	if y < 0 || y >= s.Width() {
		return s.colRange(y)
	}

	s.columns[x], s.columns[y] = s.columns[y], s.columns[x]

	if s.primary == x {
		s.primary = y
	} else if s.primary == y {
		s.primary = x
	}
	return nil
}

// SwapRows exchanges the rows at x and y.
func (s *Sheet) SwapRows(x, y int) error {
	if x < 0 || x >= s.Height() {
		return s.rowRange(x)
	}
	if y < 0 || y >= s.Height() {
		return s.rowRange(y)
	}
	for _, col := range s.columns {
		col.Swap(x, y)
	}
	return nil
}

// ConvertCol re-types the column at idx after consulting the type
// compatibility table; text does not implicitly convert to other
// kinds.
func (s *Sheet) ConvertCol(idx int, to column.Kind) error {
	if idx < 0 || idx >= s.Width() {
		return s.colRange(idx)
	}
	from := s.columns[idx].Kind()
	if !column.Convertible(from, to) {
		return errors.Newf(errors.ErrorTypeConversion,
			"column %d cannot convert from %s to %s", idx, from, to)
	}
	s.columns[idx] = s.columns[idx].ConvertCol(to)
	return nil
}

// ConvertColUnchecked re-types the column at idx without a
// compatibility check; unparseable cells become null.
func (s *Sheet) ConvertColUnchecked(idx int, to column.Kind) error {
	if idx < 0 || idx >= s.Width() {
		return s.colRange(idx)
	}
	s.columns[idx] = s.columns[idx].ConvertCol(to)
	return nil
}

func (s *Sheet) colRange(idx int) error {
	return errors.Newf(errors.ErrorTypeColumnRange,
		"column %d out of range (width %d)", idx, s.Width())
}

func (s *Sheet) rowRange(idx int) error {
	return errors.Newf(errors.ErrorTypeRowRange,
		"row %d out of range (height %d)", idx, s.Height())
}
