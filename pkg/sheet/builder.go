package sheet

import (
	"io"
	"os"

	"github.com/tabulago/tabula/pkg/column"
	"github.com/tabulago/tabula/pkg/errors"
)

// DefaultNullToken is the field value recognized as null everywhere,
// alongside the empty string.
const DefaultNullToken = "<null>"

// ColumnType is the coarse, user-facing type selection for columns
// whose types are provided up front rather than inferred.
type ColumnType int

const (
	// TypeAuto infers the column's type from its cells.
	TypeAuto ColumnType = iota
	// TypeText forces a text column.
	TypeText
	// TypeInteger forces a 32-bit signed integer column.
	TypeInteger
	// TypeNumber forces a word-sized signed integer column.
	TypeNumber
	// TypeFloat forces a 32-bit float column.
	TypeFloat
	// TypeBoolean forces a boolean column.
	TypeBoolean
)

// kind maps the coarse type onto a concrete column kind. TypeAuto has
// no single kind and is handled by inference.
func (t ColumnType) kind() (column.Kind, bool) {
	switch t {
	case TypeText:
		return column.KindText, true
	case TypeInteger:
		return column.KindI32, true
	case TypeNumber:
		return column.KindInt, true
	case TypeFloat:
		return column.KindF32, true
	case TypeBoolean:
		return column.KindBool, true
	}
	return column.KindNone, false
}

// labelMode selects how column headers are obtained.
type labelMode int

const (
	labelsNone labelMode = iota
	labelsRead
	labelsProvided
)

// typeMode selects how column types are obtained.
type typeMode int

const (
	typesInfer typeMode = iota
	typesText
	typesProvided
)

// Builder configures sheet construction. The zero configuration reads
// comma-delimited input with no headers and inferred types.
type Builder struct {
	delimiter rune
	trim      bool
	flexible  bool
	primary   int
	null      string

	labels         labelMode
	providedLabels []string

	types         typeMode
	providedTypes []ColumnType
}

// NewBuilder returns a builder with the default configuration.
func NewBuilder() *Builder {
	return &Builder{delimiter: ',', null: DefaultNullToken}
}

// Delimiter sets the field delimiter.
func (b *Builder) Delimiter(r rune) *Builder {
	b.delimiter = r
	return b
}

// Trim controls whitespace trimming of every field and header.
func (b *Builder) Trim(trim bool) *Builder {
	b.trim = trim
	return b
}

// Flexible allows records of varying width; short rows are padded
// with nulls.
func (b *Builder) Flexible(flexible bool) *Builder {
	b.flexible = flexible
	return b
}

// Primary sets the initial primary column index.
func (b *Builder) Primary(primary int) *Builder {
	b.primary = primary
	return b
}

// NullToken overrides the null token recognized during parsing.
func (b *Builder) NullToken(null string) *Builder {
	b.null = null
	return b
}

// ReadLabels reads column headers from the first record. Empty header
// cells leave their columns unlabeled.
func (b *Builder) ReadLabels() *Builder {
	b.labels = labelsRead
	return b
}

// NoLabels leaves every column unlabeled.
func (b *Builder) NoLabels() *Builder {
	b.labels = labelsNone
	return b
}

// Labels supplies column headers directly.
func (b *Builder) Labels(labels []string) *Builder {
	b.labels = labelsProvided
	b.providedLabels = labels
	return b
}

// InferTypes infers every column's type from its cells.
func (b *Builder) InferTypes() *Builder {
	b.types = typesInfer
	return b
}

// TextTypes forces every column to text.
func (b *Builder) TextTypes() *Builder {
	b.types = typesText
	return b
}

// Types supplies per-column types. Columns beyond the provided list,
// and columns marked TypeAuto, fall back to inference. A column whose
// cells do not all parse under its declared type falls back to text.
func (b *Builder) Types(types []ColumnType) *Builder {
	b.types = typesProvided
	b.providedTypes = types
	return b
}

// FromReader builds a sheet from delimited text.
func (b *Builder) FromReader(r io.Reader) (*Sheet, error) {
	cols, headers, err := b.read(r)
	if err != nil {
		return nil, err
	}
	return b.assemble(cols, headers)
}

// FromPath builds a sheet from the file at path.
func (b *Builder) FromPath(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "opening "+path)
	}
	defer f.Close()
	return b.FromReader(f)
}
