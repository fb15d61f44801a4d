package sheet

import (
	"encoding/csv"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/tabulago/tabula/pkg/column"
	"github.com/tabulago/tabula/pkg/errors"
	"github.com/tabulago/tabula/pkg/logger"
)

// read tokenizes delimited input into one growing string vector per
// column index. Short records under flexible mode pad the missing
// trailing columns with the empty string, and a column that first
// appears in a late record is back-filled for the rows before it.
func (b *Builder) read(r io.Reader) ([][]string, []column.Opt[string], error) {
	rdr := csv.NewReader(r)
	rdr.Comma = b.delimiter
	if b.flexible {
		rdr.FieldsPerRecord = -1
	}

	var headers []column.Opt[string]
	if b.labels == labelsRead {
		record, err := rdr.Read()
		if err != nil && err != io.EOF {
			return nil, nil, errors.Wrap(err, errors.ErrorTypeRead, "reading header record")
		}
		for _, field := range record {
			if b.trim {
				field = strings.TrimSpace(field)
			}
			if field == "" {
				headers = append(headers, column.Opt[string]{})
			} else {
				headers = append(headers, column.OptOf(field))
			}
		}
	}

	var cols [][]string
	rows, rowLen := 0, 0
	for {
		record, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrorTypeRead, "reading record")
		}

		for idx, field := range record {
			if b.trim {
				field = strings.TrimSpace(field)
			}
			if idx < len(cols) {
				cols[idx] = append(cols[idx], field)
			} else {
				col := make([]string, rows, rows+1)
				col = append(col, field)
				cols = append(cols, col)
			}
		}

		for c := len(record); c < rowLen; c++ {
			cols[c] = append(cols[c], "")
		}
		if len(record) > rowLen {
			rowLen = len(record)
		}
		rows++
	}

	return cols, headers, nil
}

// assemble reconciles the tokenized columns with the header list and
// types every column. When the header list is longer than the data, the
// extra headers become columns of nulls at full height; when the data
// is wider, the extra columns stay unlabeled.
func (b *Builder) assemble(cols [][]string, headers []column.Opt[string]) (*Sheet, error) {
	switch b.labels {
	case labelsNone:
		headers = nil
	case labelsProvided:
		headers = headers[:0]
		for _, label := range b.providedLabels {
			headers = append(headers, column.OptOf(label))
		}
	}

	height := 0
	if len(cols) > 0 {
		height = len(cols[0])
	}

	longest := len(cols)
	if len(headers) > longest {
		longest = len(headers)
	}
	for len(cols) < longest {
		cols = append(cols, make([]string, height))
	}
	for len(headers) < longest {
		headers = append(headers, column.Opt[string]{})
	}

	columns := make([]column.Column, 0, longest)
	for i, values := range cols {
		col := b.buildColumn(values, i)
		if headers[i].Valid {
			col.SetHeader(headers[i].Value)
		}
		columns = append(columns, col)
	}

	primary := -1
	if len(columns) > 0 {
		primary = b.primary
		if primary < 0 || primary >= len(columns) {
			return nil, errors.Newf(errors.ErrorTypePrimary,
				"primary column %d out of range (width %d)", primary, len(columns))
		}
	}

	logger.Debug("sheet constructed",
		zap.Int("width", len(columns)),
		zap.Int("height", height),
	)

	return &Sheet{columns: columns, primary: primary, null: b.null}, nil
}

// buildColumn types one column's raw cells according to the builder's
// type strategy.
func (b *Builder) buildColumn(values []string, idx int) column.Column {
	switch b.types {
	case typesText:
		col, _ := column.ParseKind(values, column.KindText, b.null)
		return col
	case typesProvided:
		t := TypeAuto
		if idx < len(b.providedTypes) {
			t = b.providedTypes[idx]
		}
		if kind, ok := t.kind(); ok {
			if col, ok := column.ParseKind(values, kind, b.null); ok {
				return col
			}
			// Declared type did not fit every cell.
			logger.Debug("column fell back to text", zap.Int("column", idx))
			col, _ := column.ParseKind(values, column.KindText, b.null)
			return col
		}
		return column.Infer(values, b.null)
	default:
		return column.Infer(values, b.null)
	}
}
