package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "http://example.com/foo"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different host draws from its own bucket
	if err := limiter.Wait(ctx, "http://other.example"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_PerHostBuckets(t *testing.T) {
	// 1 rps, burst 1: the single token is gone after one request
	limiter := NewLimiter(1, 1)
	ctx := context.Background()
	url := "http://example.com"

	if err := limiter.Wait(ctx, url); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	if limiter.Allow(url) {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Other hosts are unaffected
	if !limiter.Allow("http://other.com") {
		t.Errorf("expected allow for other host")
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	limiter := NewLimiter(10, 5)

	if limiter.Allow("::invalid") {
		t.Errorf("expected allow to fail for unparseable URL")
	}
	if err := limiter.Wait(context.Background(), "::invalid"); err == nil {
		t.Errorf("expected error for unparseable URL")
	}
}
