package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestRateLimiter_Window(t *testing.T) {

	clock := &fakeClock{current: time.Unix(1000, 0)}
	limiter := NewRateLimiter(10, time.Minute, clock.now)

	for i := 0; i < 10; i++ {
		if !limiter.Allow() {
			t.Fatalf("request %d should be admitted", i+1)
		}
	}
	if limiter.Allow() {
		t.Fatalf("11th request within the window should be rejected")
	}

	// The window is rolling: once the oldest timestamps age out, capacity
	// returns.
	clock.advance(61 * time.Second)
	if !limiter.Allow() {
		t.Errorf("request after the window expired should be admitted")
	}
}

func TestRateLimiter_RollingNotResetting(t *testing.T) {

	clock := &fakeClock{current: time.Unix(1000, 0)}
	limiter := NewRateLimiter(2, time.Minute, clock.now)

	limiter.Allow()
	clock.advance(30 * time.Second)
	limiter.Allow()

	// 45s after the first request: it is still inside the window, so the
	// limiter stays full.
	clock.advance(15 * time.Second)
	if limiter.Allow() {
		t.Fatalf("expected rejection while both timestamps are in the window")
	}

	// 61s after the first request it has aged out; one slot frees up.
	clock.advance(16 * time.Second)
	if !limiter.Allow() {
		t.Errorf("expected admission after the oldest timestamp aged out")
	}
}

func TestRateLimitMiddleware(t *testing.T) {

	clock := &fakeClock{current: time.Unix(1000, 0)}
	limiter := NewRateLimiter(1, time.Minute, clock.now)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := RateLimitMiddleware(limiter, next)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"hi"}`))
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/chat", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}
}
