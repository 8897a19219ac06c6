package http

import (
	"sync"
	"time"
)

// RateLimiter admits at most limit requests within a rolling window. The
// window is tracked process-wide, not per client; the clock is injected so
// tests can drive time.
type RateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	times  []time.Time
}

func NewRateLimiter(limit int, window time.Duration, now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		limit:  limit,
		window: window,
		now:    now,
	}
}

// Allow records one request attempt and reports whether it is admitted.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.now()
	cutoff := current.Add(-r.window)

	kept := r.times[:0]
	for _, t := range r.times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	r.times = kept

	if len(r.times) >= r.limit {
		return false
	}
	r.times = append(r.times, current)
	return true
}
