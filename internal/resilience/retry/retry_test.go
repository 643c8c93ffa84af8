package retry_test

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"pressdesk/internal/resilience/retry"
)

func fastConfig() retry.Config {
	return retry.Config{
		MaxAttempts:    3,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}
}

func TestWithBackoff_firstTrySuccess(t *testing.T) {
	calls := 0
	err := retry.WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}

func TestWithBackoff_retriesTransientError(t *testing.T) {
	calls := 0
	err := retry.WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		if calls < 3 {
			return syscall.ECONNREFUSED
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithBackoff err=%v", err)
	}
	if calls != 3 {
		t.Fatalf("calls=%d, want 3", calls)
	}
}

func TestWithBackoff_nonRetryableAbortsImmediately(t *testing.T) {
	boom := errors.New("constraint violation")
	calls := 0
	err := retry.WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
}

func TestWithBackoff_exhaustsAttempts(t *testing.T) {
	calls := 0
	err := retry.WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return syscall.ECONNRESET
	})
	if err == nil || !errors.Is(err, syscall.ECONNRESET) {
		t.Fatalf("err=%v, want wrapped ECONNRESET", err)
	}
	if calls != 3 {
		t.Fatalf("calls=%d, want 3", calls)
	}
}

func TestWithBackoff_contextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry.WithBackoff(ctx, fastConfig(), func() error {
		return syscall.ECONNREFUSED
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context canceled", context.Canceled, false},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"connection reset", syscall.ECONNRESET, true},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retry.IsRetryable(tt.err); got != tt.want {
				t.Fatalf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
