package util

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstNonErrorWithValueStopsAtFirstSuccess(t *testing.T) {
	calls := 0

	result, err := FirstNonErrorWithValue(context.Background(),
		func(ctx context.Context) (string, error) {
			calls++
			return "", errors.New("first down")
		},
		func(ctx context.Context) (string, error) {
			calls++
			return "second", nil
		},
		func(ctx context.Context) (string, error) {
			calls++
			return "third", nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "second", result)
	assert.Equal(t, 2, calls)
}

func TestFirstNonErrorWithValueReturnsLastError(t *testing.T) {
	_, err := FirstNonErrorWithValue(context.Background(),
		func(ctx context.Context) (int, error) { return 0, errors.New("first") },
		func(ctx context.Context) (int, error) { return 0, errors.New("last") },
	)

	assert.EqualError(t, err, "last")
}

func TestFirstNonErrorWithValueHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FirstNonErrorWithValue(ctx,
		func(ctx context.Context) (int, error) {
			t.Fatal("should not be called")
			return 0, nil
		},
	)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemoveBOM(t *testing.T) {
	assert.Equal(t, []byte(`{"a":1}`), RemoveBOM([]byte("\xef\xbb\xbf"+`{"a":1}`)))
	assert.Equal(t, []byte(`{"a":1}`), RemoveBOM([]byte(`{"a":1}`)))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
}
