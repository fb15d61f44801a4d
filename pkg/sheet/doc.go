// Package sheet implements ColumnSheet, a mutable table of typed
// columns built from delimited text.
//
// A sheet owns an ordered collection of pkg/column columns, all of the
// same height, an optional primary column index, and the null token
// recognized by every parse path. Structural mutators validate bounds
// and cardinality before touching any column, so a failed call never
// leaves the table partially mutated.
package sheet
