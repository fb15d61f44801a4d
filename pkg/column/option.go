package column

// Opt is one nullable cell slot. The zero value is null, mirroring the
// database/sql Null* convention.
type Opt[T any] struct {
	Value T
	Valid bool
}

// OptOf wraps a present value.
func OptOf[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Valid: true}
}
