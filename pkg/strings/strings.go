// Package strings provides zero-copy conversions between strings and
// byte slices for the text array hot paths.
//
// The conversions avoid allocation by aliasing the underlying memory.
// Callers must not mutate bytes obtained from a string, and must not
// mutate a byte slice after converting it to a string.
package strings

import "unsafe"

// BytesToString converts a byte slice to a string without copying.
// The caller must ensure b is not modified afterwards.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes converts a string to a byte slice without copying.
// The returned slice must be treated as read-only.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
