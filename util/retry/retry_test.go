package retry

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRetryFuncSucceedsAfterTransientFailures(t *testing.T) {
	calls := 0

	err := RetryFunc(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, func(error) bool { return true }, Retry{Base: 0, Cap: 0, Tries: 4})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryFuncStopsOnNonRetryableError(t *testing.T) {
	calls := 0
	permanent := errors.New("permanent")

	err := RetryFunc(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	}, func(error) bool { return false }, Retry{Base: 0, Cap: 0, Tries: 4})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetryFuncExhaustsTries(t *testing.T) {
	calls := 0

	err := RetryFunc(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("transient")
	}, func(error) bool { return true }, Retry{Base: 0, Cap: 0, Tries: 3})

	assert.ErrorIs(t, err, ErrOutOfRetries)
	assert.Equal(t, 3, calls)
}

func TestRetryFuncHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryFunc(ctx, func(ctx context.Context) error {
		t.Fatal("should not be called")
		return nil
	}, func(error) bool { return true }, DefaultRetry)

	assert.ErrorIs(t, err, context.Canceled)
}
