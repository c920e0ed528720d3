package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore/internal/storefront/resilience"
)

func fastRetryConfig(attempts int) resilience.RetryConfig {
	return resilience.RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BackoffFactor:  2,
	}
}

func TestRetry_Execute(t *testing.T) {
	ctx := context.Background()
	errTemporary := errors.New("temporary")

	t.Run("succeeds after temporary failures", func(t *testing.T) {
		r := resilience.NewRetry("test", fastRetryConfig(3))
		var attempts []int

		err := r.Execute(ctx, func(attempt int) (bool, error) {
			attempts = append(attempts, attempt)
			if attempt < 3 {
				return true, errTemporary
			}
			return false, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, attempts)
	})

	t.Run("returns last error when attempts run out", func(t *testing.T) {
		r := resilience.NewRetry("test", fastRetryConfig(2))
		calls := 0

		err := r.Execute(ctx, func(int) (bool, error) {
			calls++
			return true, errTemporary
		})

		assert.ErrorIs(t, err, errTemporary)
		assert.Equal(t, 2, calls)
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		r := resilience.NewRetry("test", fastRetryConfig(5))
		errPermanent := errors.New("permanent")
		calls := 0

		err := r.Execute(ctx, func(int) (bool, error) {
			calls++
			return false, errPermanent
		})

		assert.ErrorIs(t, err, errPermanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context stops waiting", func(t *testing.T) {
		r := resilience.NewRetry("test", resilience.RetryConfig{
			MaxAttempts:    5,
			InitialBackoff: time.Hour,
			MaxBackoff:     time.Hour,
			BackoffFactor:  1,
		})
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		err := r.Execute(cancelCtx, func(int) (bool, error) {
			return true, errTemporary
		})

		assert.ErrorIs(t, err, resilience.ErrContextCanceled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("invalid attempts mean a single try", func(t *testing.T) {
		r := resilience.NewRetry("test", resilience.RetryConfig{})
		calls := 0

		_ = r.Execute(ctx, func(int) (bool, error) {
			calls++
			return true, errTemporary
		})

		assert.Equal(t, 1, calls)
	})
}
