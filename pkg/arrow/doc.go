// Package arrow implements the raw columnar array encodings: fixed-width
// typed arrays, a variable-width text array, and a dense-union array for
// heterogeneous values.
//
// All arrays share the same null model: a bitpacked validity bitmap with
// buffer elision. When every element is present the bitmap is not
// allocated; when every element is null neither the bitmap nor the values
// buffer is allocated and only a null counter distinguishes the state.
// Arrays are immutable after construction; mutation happens at the table
// layer in pkg/column.
package arrow
