// Package testutil provides testing utilities for Tabula
package testutil

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/tabulago/tabula/pkg/sheet"
)

// AirCSV is the classic monthly air travel table: one text column and
// three integer columns over twelve rows, with no duplicate values, so
// sort results are fully determined.
const AirCSV = `Month,1958,1959,1960
JAN,340,360,417
FEB,318,342,391
MAR,362,406,419
APR,348,396,461
MAY,363,420,472
JUN,435,472,535
JUL,491,548,622
AUG,505,559,606
SEP,404,463,508
OCT,359,407,461
NOV,310,362,390
DEC,337,405,432
`

// TestLogger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// AirSheet builds a sheet from AirCSV with read headers, provided
// column types, and column zero as primary.
func AirSheet(t *testing.T) *sheet.Sheet {
	t.Helper()

	s, err := sheet.NewBuilder().
		Trim(true).
		Primary(0).
		Types([]sheet.ColumnType{
			sheet.TypeText,
			sheet.TypeInteger,
			sheet.TypeInteger,
			sheet.TypeInteger,
		}).
		ReadLabels().
		FromReader(strings.NewReader(AirCSV))
	if err != nil {
		t.Fatalf("building air sheet: %v", err)
	}
	return s
}

// EmptySheet builds a sheet from empty input.
func EmptySheet(t *testing.T) *sheet.Sheet {
	t.Helper()

	s, err := sheet.NewBuilder().
		Trim(true).
		ReadLabels().
		InferTypes().
		FromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("building empty sheet: %v", err)
	}
	return s
}
