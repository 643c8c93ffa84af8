package circuitbreaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"pressdesk/internal/resilience/circuitbreaker"
)

func testConfig() circuitbreaker.Config {
	return circuitbreaker.Config{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      3,
	}
}

func TestCircuitBreaker_passesThroughSuccess(t *testing.T) {
	cb := circuitbreaker.New(testConfig())

	got, err := cb.Execute(func() (any, error) { return 42, nil })
	if err != nil {
		t.Fatalf("Execute err=%v", err)
	}
	if got.(int) != 42 {
		t.Fatalf("Execute = %v, want 42", got)
	}
	if cb.IsOpen() {
		t.Fatal("circuit open after success")
	}
}

func TestCircuitBreaker_tripsAfterConsecutiveFailures(t *testing.T) {
	cb := circuitbreaker.New(testConfig())
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(func() (any, error) { return nil, boom }); !errors.Is(err, boom) {
			t.Fatalf("attempt %d: err=%v, want boom", i, err)
		}
	}

	if !cb.IsOpen() {
		t.Fatalf("circuit still %v after threshold failures", cb.State())
	}

	// Open circuit fails fast without running fn.
	ran := false
	_, err := cb.Execute(func() (any, error) { ran = true; return nil, nil })
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("err=%v, want ErrOpenState", err)
	}
	if ran {
		t.Fatal("fn ran while circuit was open")
	}
}

func TestCircuitBreaker_staysClosedBelowMinRequests(t *testing.T) {
	cb := circuitbreaker.New(testConfig())

	for i := 0; i < 2; i++ {
		_, _ = cb.Execute(func() (any, error) { return nil, errors.New("boom") })
	}
	if cb.IsOpen() {
		t.Fatal("circuit tripped below the minimum sample size")
	}
}
