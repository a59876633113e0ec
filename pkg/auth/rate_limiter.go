package auth

import (
	"context"
	"sync"
	"time"
)

// RateLimiter provides rate limiting functionality
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// SlidingWindowLimiter admits at most limit requests per key inside any
// window of windowSize. Timestamps older than now-windowSize are pruned
// before counting. Keys with no request inside the window are swept at
// most once per windowSize, so the key set stays bounded by recent traffic.
type SlidingWindowLimiter struct {
	mu         sync.Mutex
	windows    map[string][]time.Time
	limit      int
	windowSize time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

// NewSlidingWindowLimiter creates a new sliding window rate limiter
func NewSlidingWindowLimiter(limit int, windowSize time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windows:    make(map[string][]time.Time),
		limit:      limit,
		windowSize: windowSize,
		now:        time.Now,
	}
}

// WithClock replaces the limiter's time source.
func (l *SlidingWindowLimiter) WithClock(now func() time.Time) *SlidingWindowLimiter {
	l.now = now
	return l
}

// Allow records a request for key and reports whether it fits in the window
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.windowSize)

	if now.Sub(l.lastSweep) >= l.windowSize {
		l.sweep(windowStart)
		l.lastSweep = now
	}

	requests := l.windows[key]
	valid := requests[:0]
	for _, reqTime := range requests {
		if reqTime.After(windowStart) {
			valid = append(valid, reqTime)
		}
	}

	if len(valid) >= l.limit {
		l.windows[key] = valid
		return false, nil
	}

	l.windows[key] = append(valid, now)
	return true, nil
}

// sweep drops keys whose newest request is outside the window.
// Requests are appended in clock order, so the last one is the newest.
func (l *SlidingWindowLimiter) sweep(windowStart time.Time) {
	for key, requests := range l.windows {
		if len(requests) == 0 || !requests[len(requests)-1].After(windowStart) {
			delete(l.windows, key)
		}
	}
}

// Reset resets the rate limit for a key
func (l *SlidingWindowLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.windows, key)
	return nil
}
