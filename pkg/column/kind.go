package column

// Kind identifies the data type of a column or cell. KindNone marks a
// null cell; columns themselves never report it.
type Kind int

const (
	KindNone Kind = iota
	KindText
	KindI32
	KindU32
	KindInt
	KindUint
	KindF32
	KindF64
	KindBool
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindText:
		return "text"
	case KindI32:
		return "i32"
	case KindU32:
		return "u32"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindBool:
		return "bool"
	}
	return "unknown"
}
