package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeColumnRange, "column 5 out of range")
	assert.Equal(t, ErrorTypeColumnRange, err.Type)
	assert.Equal(t, "column_range: column 5 out of range", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrorTypeRowRange, "row %d out of range (height %d)", 9, 3)
	assert.Equal(t, "row_range: row 9 out of range (height 3)", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk gone")
	err := Wrap(cause, ErrorTypeRead, "loading csv")
	require.NotNil(t, err)
	assert.Equal(t, "read: loading csv: disk gone", err.Error())
	assert.True(t, errors.Is(err, cause))

	assert.Nil(t, Wrap(nil, ErrorTypeRead, "ignored"))
}

func TestWrapPreservesStack(t *testing.T) {
	inner := New(ErrorTypeParse, "bad token")
	outer := Wrap(inner, ErrorTypeRead, "row 3")
	assert.Equal(t, inner.Stack, outer.Stack)
	assert.True(t, IsType(outer, ErrorTypeRead))

	var e *Error
	require.True(t, errors.As(errors.Unwrap(outer), &e))
	assert.Equal(t, ErrorTypeParse, e.Type)
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypePrimary, "no columns present")
	assert.True(t, IsType(err, ErrorTypePrimary))
	assert.False(t, IsType(err, ErrorTypeColumnRange))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypePrimary))
	assert.False(t, IsType(nil, ErrorTypePrimary))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeLengthMismatch, "column too short").
		WithDetail("expected", 4).
		WithDetail("actual", 2)
	assert.Equal(t, 4, err.Details["expected"])
	assert.Equal(t, 2, err.Details["actual"])
}
