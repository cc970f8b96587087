package common

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastOpts(attempts int) RetryOptions {
	return RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestWithRetry_SucceedsAfterTransientFailure(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastOpts(5))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return errors.New("always fails")
	}, fastOpts(3))

	assert.ErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_RateLimitNotRetried(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return fmt.Errorf("upstream: %w", ErrRateLimit)
	}, fastOpts(5))

	assert.ErrorIs(t, err, ErrRateLimit)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_NonRetryableError(t *testing.T) {
	calls := 0
	err := WithRetry(context.Background(), func() error {
		calls++
		return &RetryableError{Err: errors.New("bad request"), Retryable: false}
	}, fastOpts(5))

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error {
		return errors.New("transient")
	}, fastOpts(5))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewUserError("could not save", inner)

	assert.Equal(t, "could not save: disk full", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := &UserError{UserMessage: "just a message"}
	assert.Equal(t, "just a message", bare.Error())
}
