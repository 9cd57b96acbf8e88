// Package security provides the client-side guard layer: authentication rate
// limiting, error sanitization, and PII masking.
package security

import (
	"strings"
	"sync"
	"time"
)

const (
	// DefaultMaxAttempts and DefaultWindow bound authentication attempts:
	// 5 attempts per trailing 15 minutes, per key.
	DefaultMaxAttempts = 5
	DefaultWindow      = 15 * time.Minute
)

// nowFn is a test seam for the clock.
var nowFn = time.Now

// RateLimiter counts authentication attempts per key within a sliding
// window. Sign-in and sign-up share one instance keyed by normalized email,
// so failed attempts on either entry point count against both.
//
// Entries are pruned lazily on the next check for a key and never deleted
// outright; the map lives as long as the process. That growth is an accepted
// tradeoff for a short-lived client process.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
}

// NewRateLimiter builds a limiter allowing max attempts per window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
	}
}

// NormalizeKey folds an email into the limiter's key space.
func NormalizeKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Allow records an attempt for key and reports whether it is still within
// the limit. The current attempt counts: with max=5, the first five calls
// inside the window return true and the sixth returns false.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := nowFn()
	recent := rl.prune(key, now)

	if len(recent) >= rl.max {
		rl.attempts[key] = recent
		return false
	}

	rl.attempts[key] = append(recent, now)
	return true
}

// RemainingTime returns how long until the oldest counted attempt leaves the
// window, or zero when the key is under the limit.
func (rl *RateLimiter) RemainingTime(key string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := nowFn()
	recent := rl.prune(key, now)
	rl.attempts[key] = recent

	if len(recent) < rl.max {
		return 0
	}

	oldest := recent[0]
	for _, ts := range recent[1:] {
		if ts.Before(oldest) {
			oldest = ts
		}
	}
	left := rl.window - now.Sub(oldest)
	if left < 0 {
		return 0
	}
	return left
}

// prune returns the attempts for key still inside the window. Caller holds mu.
func (rl *RateLimiter) prune(key string, now time.Time) []time.Time {
	recent := rl.attempts[key][:0:0]
	for _, ts := range rl.attempts[key] {
		if now.Sub(ts) < rl.window {
			recent = append(recent, ts)
		}
	}
	return recent
}
