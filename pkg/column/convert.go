package column

// NewOfKind returns an empty column of the given kind. Panics on
// KindNone, which never identifies a column.
func NewOfKind(kind Kind) Column {
	switch kind {
	case KindText:
		return NewText()
	case KindI32:
		return NewI32()
	case KindU32:
		return NewU32()
	case KindInt:
		return NewInt()
	case KindUint:
		return NewUint()
	case KindF32:
		return NewF32()
	case KindF64:
		return NewF64()
	case KindBool:
		return NewBool()
	}
	panic("column: no column representation for " + kind.String())
}

func parseAll[T any](kind Kind, parse func(string) (T, error), cell func(T) Cell, values []string, null string) (*Array[T], bool) {
	a := &Array[T]{kind: kind, parse: parse, cell: cell}
	a.cells = make([]Opt[T], 0, len(values))
	for _, value := range values {
		parsed, err := parseOpt(value, null, parse)
		if err != nil {
			return nil, false
		}
		a.cells = append(a.cells, parsed)
	}
	return a, true
}

// ParseKind parses every raw value against the given kind, succeeding
// only when every cell parses. The null token and the empty string
// parse to null under any kind.
func ParseKind(values []string, kind Kind, null string) (Column, bool) {
	switch kind {
	case KindText:
		col, ok := parseAll(KindText, parseText, TextCell, values, null)
		if !ok {
			return nil, false
		}
		return col, true
	case KindI32:
		col, ok := parseAll(KindI32, parseI32, I32Cell, values, null)
		if !ok {
			return nil, false
		}
		return col, true
	case KindU32:
		col, ok := parseAll(KindU32, parseU32, U32Cell, values, null)
		if !ok {
			return nil, false
		}
		return col, true
	case KindInt:
		col, ok := parseAll(KindInt, parseInt, IntCell, values, null)
		if !ok {
			return nil, false
		}
		return col, true
	case KindUint:
		col, ok := parseAll(KindUint, parseUint, UintCell, values, null)
		if !ok {
			return nil, false
		}
		return col, true
	case KindF32:
		col, ok := parseAll(KindF32, parseF32, F32Cell, values, null)
		if !ok {
			return nil, false
		}
		return col, true
	case KindF64:
		col, ok := parseAll(KindF64, parseF64, F64Cell, values, null)
		if !ok {
			return nil, false
		}
		return col, true
	case KindBool:
		col, ok := parseAll(KindBool, parseBool, BoolCell, values, null)
		if !ok {
			return nil, false
		}
		return col, true
	}
	return nil, false
}

// Convertible reports whether the checked conversion path allows
// re-typing a column from one kind to another. Every kind renders to
// text, and the numeric and boolean kinds are mutually convertible,
// but text does not implicitly convert to anything else; the unchecked
// path exists for that.
func Convertible(from, to Kind) bool {
	if from == to || to == KindText {
		return true
	}
	return from != KindText
}

// inferOrder is the type inference priority. The first kind under
// which every cell parses wins, so an all-"0"/"1" column is an
// integer column, not a boolean one, and text is the catch-all.
var inferOrder = []Kind{KindI32, KindU32, KindInt, KindUint, KindBool, KindF32, KindF64, KindText}

// Infer builds a column by trying each kind in priority order until
// one parses every cell. Text always succeeds.
func Infer(values []string, null string) Column {
	for _, kind := range inferOrder {
		if col, ok := ParseKind(values, kind, null); ok {
			return col
		}
	}
	// Unreachable: text parses anything.
	col, _ := ParseKind(values, KindText, null)
	return col
}
