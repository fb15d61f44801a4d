package column

import (
	"errors"
	"strconv"
)

// parseOpt parses one raw field against a concrete parser. The empty
// string and the configured null token decode to the null slot; any
// other parse failure is reported.
func parseOpt[T any](input, null string, parse func(string) (T, error)) (Opt[T], error) {
	if input == "" || input == null {
		return Opt[T]{}, nil
	}
	v, err := parse(input)
	if err != nil {
		return Opt[T]{}, err
	}
	return OptOf(v), nil
}

func parseI32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func parseU32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func parseInt(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, strconv.IntSize)
	return int(v), err
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize)
	return uint(v), err
}

// Float parses saturate on overflow instead of failing, so a value of
// absurd magnitude still lands in a float column as an infinity.
func parseF32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && floatOverflow(err) {
		err = nil
	}
	return float32(v), err
}

func parseF64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && floatOverflow(err) {
		err = nil
	}
	return v, err
}

func floatOverflow(err error) bool {
	var ne *strconv.NumError
	return errors.As(err, &ne) && ne.Err == strconv.ErrRange
}

var errBadBool = errors.New("column: invalid boolean")

// parseBool accepts exactly "true" and "false"; the laxer forms
// strconv.ParseBool takes ("1", "t", "TRUE") must stay integers or
// text under type inference.
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errBadBool
}

func parseText(s string) (string, error) {
	return s, nil
}
