// Package column implements the table-facing column layer: typed,
// null-aware columns behind one capability interface, plus the cell
// value type and cross-type comparison used for sorting.
//
// Columns here store one optional value per cell, trading the packed
// layout of pkg/arrow for cheap structural mutation. The structural
// mutators (Push, Insert, Remove, RemoveAll, ApplyIndexSwap) are
// intentionally lenient about bounds: the owning sheet in pkg/sheet is
// the sole bounds authority and must be the only caller.
package column
