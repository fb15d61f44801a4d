// Package tabula provides an in-memory columnar table engine with typed,
// null-aware columns built from delimited text.
//
// Tables are sheets of columns. Each column holds one element kind
// (i32, u32, int, uint, f32, f64, bool or text) with per-cell validity,
// and the sheet layer adds row and column editing, a primary column,
// in-place sorting and kind conversion on top.
//
// # Quick Start
//
// Read a CSV file into a typed sheet and sort it:
//
//	import "github.com/tabulago/tabula/pkg/sheet"
//
//	s, err := sheet.NewBuilder().
//	    ReadLabels().
//	    Primary(0).
//	    FromPath("air.csv")
//	if err != nil {
//	    return err
//	}
//
//	if err := s.SortRows(); err != nil {
//	    return err
//	}
//	cell, _ := s.GetCell(1, 0)
//
// Unless told otherwise, the builder infers each column's kind from its
// cells, trying i32, u32, int, uint, bool, f32 and f64 before falling
// back to text. Cells equal to the null token (by default "<null>")
// parse as nulls of the column's kind.
//
// # Key Packages
//
//	pkg/sheet    - Table construction, editing, sorting and conversion
//	pkg/column   - Typed columns, cells and kind inference
//	pkg/arrow    - Immutable bitpacked array layouts
//	pkg/export   - CSV and JSON output with optional compression
//	pkg/errors   - Structured error handling
//	pkg/logger   - Structured logging
//
// The tabula command under cmd/tabula exposes loading, inspection,
// sorting, conversion and re-export as a CLI.
package tabula
