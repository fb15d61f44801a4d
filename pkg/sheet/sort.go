package sheet

import (
	"sort"

	"github.com/tabulago/tabula/pkg/column"
	"github.com/tabulago/tabula/pkg/errors"
)

// resolveIndexSwaps turns an argsort index buffer into a swap chain:
// after resolution, executing swap(p, indices[p]) for p left to right
// reorders any buffer exactly like indexing it by the original
// permutation, with no auxiliary full-size buffer.
//
// Each position below p has already been placed by the time the scan
// reaches p, so an index pointing before p is redirected through the
// chain of earlier swaps until it lands at or after p.
func resolveIndexSwaps(indices []int) {
	for p := range indices {
		for indices[p] < p {
			indices[p] = indices[indices[p]]
		}
	}
}

// argsort returns the permutation that sorts n keys. The sort is
// stable, so equal keys keep their original relative order.
func argsort(n int, desc bool, key func(int) column.Cell) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		c := key(indices[i]).Compare(key(indices[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
	return indices
}

// SortRows sorts the rows by the primary column in ascending order.
func (s *Sheet) SortRows() error {
	return s.sortRowsByPrimary(false)
}

// SortRowsDesc sorts the rows by the primary column in descending
// order.
func (s *Sheet) SortRowsDesc() error {
	return s.sortRowsByPrimary(true)
}

func (s *Sheet) sortRowsByPrimary(desc bool) error {
	primary, ok := s.Primary()
	if !ok {
		return errors.New(errors.ErrorTypePrimary, "no primary column to sort by")
	}
	return s.sortRows(primary, desc)
}

// SortRowsBy sorts the rows by the values of the column at keyCol in
// ascending order.
func (s *Sheet) SortRowsBy(keyCol int) error {
	return s.sortRows(keyCol, false)
}

// SortRowsByDesc sorts the rows by the values of the column at keyCol
// in descending order.
func (s *Sheet) SortRowsByDesc(keyCol int) error {
	return s.sortRows(keyCol, true)
}

func (s *Sheet) sortRows(keyCol int, desc bool) error {
	if keyCol < 0 || keyCol >= s.Width() {
		return s.colRange(keyCol)
	}

	key := s.columns[keyCol]
	indices := argsort(s.Height(), desc, func(i int) column.Cell {
		cell, _ := key.DataRef(i)
		return cell
	})
	resolveIndexSwaps(indices)

	for _, col := range s.columns {
		col.ApplyIndexSwap(indices)
	}
	return nil
}

// SortCols sorts the columns by the values of the first row in
// ascending order.
func (s *Sheet) SortCols() error {
	return s.sortCols(0, false)
}

// SortColsDesc sorts the columns by the values of the first row in
// descending order.
func (s *Sheet) SortColsDesc() error {
	return s.sortCols(0, true)
}

// SortColsBy sorts the columns by the values of the row at keyRow in
// ascending order. The primary index follows its column to the
// column's new position.
func (s *Sheet) SortColsBy(keyRow int) error {
	return s.sortCols(keyRow, false)
}

// SortColsByDesc sorts the columns by the values of the row at keyRow
// in descending order.
func (s *Sheet) SortColsByDesc(keyRow int) error {
	return s.sortCols(keyRow, true)
}

func (s *Sheet) sortCols(keyRow int, desc bool) error {
	if keyRow < 0 || keyRow >= s.Height() {
		return s.rowRange(keyRow)
	}

	indices := argsort(s.Width(), desc, func(i int) column.Cell {
		cell, _ := s.columns[i].DataRef(keyRow)
		return cell
	})

	// Track where the primary column lands before the argsort buffer
	// is consumed by swap resolution.
	primary := s.primary
	for pos, src := range indices {
		if src == s.primary {
			primary = pos
			break
		}
	}

	resolveIndexSwaps(indices)
	for pos, elem := range indices {
		s.columns[pos], s.columns[elem] = s.columns[elem], s.columns[pos]
	}
	s.primary = primary
	return nil
}
