// Package export writes sheets back out as delimited text or JSON,
// optionally compressed. CSV output round-trips through the sheet
// builder: null cells render as the sheet's null token and headers
// become the first record.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/tabulago/tabula/pkg/column"
	"github.com/tabulago/tabula/pkg/errors"
	"github.com/tabulago/tabula/pkg/sheet"
)

// Format selects the output encoding.
type Format string

const (
	// FormatCSV writes delimited text.
	FormatCSV Format = "csv"
	// FormatJSON writes an array of row objects.
	FormatJSON Format = "json"
)

// Compression selects the output compression.
type Compression string

const (
	// CompressionNone writes plain output.
	CompressionNone Compression = "none"
	// CompressionGzip wraps the output in gzip.
	CompressionGzip Compression = "gzip"
	// CompressionZstd wraps the output in zstandard.
	CompressionZstd Compression = "zstd"
)

// Options configures an export.
type Options struct {
	Format      Format
	Compression Compression
	// Delimiter is the CSV field delimiter; 0 means comma.
	Delimiter rune
	// Headers controls whether CSV output starts with a header record.
	Headers bool
}

// DetectCompression infers compression from a file extension.
func DetectCompression(path string) Compression {
	switch filepath.Ext(path) {
	case ".gz":
		return CompressionGzip
	case ".zst":
		return CompressionZstd
	}
	return CompressionNone
}

// Write exports the sheet to w.
func Write(w io.Writer, s *sheet.Sheet, opts Options) error {
	cw, err := wrapWriter(w, opts.Compression)
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatJSON:
		err = writeJSON(cw, s)
	case FormatCSV, "":
		err = writeCSV(cw, s, opts)
	default:
		err = errors.Newf(errors.ErrorTypeConfig, "unknown export format %q", opts.Format)
	}
	if err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}

// WriteFile exports the sheet to path, inferring compression from the
// extension when none is set.
func WriteFile(path string, s *sheet.Sheet, opts Options) error {
	if opts.Compression == "" || opts.Compression == CompressionNone {
		opts.Compression = DetectCompression(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "creating "+path)
	}
	if err := Write(f, s, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// nopCloser keeps the plain path symmetrical with the compressed one.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func wrapWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeInternal, "creating zstd writer")
		}
		return zw, nil
	case CompressionNone, "":
		return nopCloser{w}, nil
	}
	return nil, errors.Newf(errors.ErrorTypeConfig, "unknown compression %q", c)
}

func writeCSV(w io.Writer, s *sheet.Sheet, opts Options) error {
	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}

	if opts.Headers {
		record := make([]string, 0, s.Width())
		for _, h := range s.Headers() {
			record = append(record, h.Label)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "writing header record")
		}
	}

	record := make([]string, s.Width())
	for row := 0; row < s.Height(); row++ {
		cells, _ := s.GetRow(row)
		for i, cell := range cells {
			if cell.IsNone() {
				record[i] = s.NullToken()
			} else {
				record[i] = cell.String()
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, errors.ErrorTypeFile, "writing record "+strconv.Itoa(row))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "flushing records")
	}
	return nil
}

// writeJSON renders each row as an object keyed by header label, or
// by a positional colN key for unlabeled columns. Null cells become
// JSON null.
func writeJSON(w io.Writer, s *sheet.Sheet) error {
	keys := make([]string, 0, s.Width())
	for i, h := range s.Headers() {
		if h.Labeled {
			keys = append(keys, h.Label)
		} else {
			keys = append(keys, fmt.Sprintf("col%d", i))
		}
	}

	rows := make([]map[string]interface{}, 0, s.Height())
	for row := 0; row < s.Height(); row++ {
		cells, _ := s.GetRow(row)
		obj := make(map[string]interface{}, len(cells))
		for i, cell := range cells {
			obj[keys[i]] = cellValue(cell)
		}
		rows = append(rows, obj)
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(rows); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "encoding rows")
	}
	return nil
}

func cellValue(c column.Cell) interface{} {
	switch c.Kind() {
	case column.KindText:
		return c.Text()
	case column.KindI32:
		return c.I32()
	case column.KindU32:
		return c.U32()
	case column.KindInt:
		return c.Int()
	case column.KindUint:
		return c.Uint()
	case column.KindF32:
		return c.F32()
	case column.KindF64:
		return c.F64()
	case column.KindBool:
		return c.Bool()
	}
	return nil
}
