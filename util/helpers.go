package util

import (
	"bytes"
	"context"
)

// FirstNonErrorWithValue runs each function in order and returns the first
// result that does not error. If every function errors, the last error is
// returned. The context is checked between attempts so a cancelled caller
// does not keep walking the fallback chain.
func FirstNonErrorWithValue[T any](ctx context.Context, fs ...func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for _, f := range fs {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		it, err := f(ctx)
		if err == nil {
			return it, nil
		}
		lastErr = err
	}
	return zero, lastErr
}

// RemoveBOM strips a UTF-8 byte order mark from the start of bs.
// https://en.wikipedia.org/wiki/Byte_order_mark
func RemoveBOM(bs []byte) []byte {
	return bytes.TrimPrefix(bs, []byte("\xef\xbb\xbf"))
}

// ContainsString checks whether an item exists in a slice
func ContainsString(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}

// FromPointer returns the zero value for nil pointers
func FromPointer[T comparable](s *T) T {
	if s == nil {
		return *new(T)
	}
	return *s
}

// FirstNonEmpty returns the first non-zero value of its arguments.
func FirstNonEmpty[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}
