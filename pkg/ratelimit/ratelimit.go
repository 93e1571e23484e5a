package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a sliding-window counter keyed by caller identity.
type Limiter struct {
	mu      sync.Mutex
	hits    map[string][]time.Time
	window  time.Duration
	maxHits int
}

func NewLimiter(window time.Duration, maxHits int) *Limiter {
	return &Limiter{
		hits:    make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
	}
}

// Allow records a hit for key and reports whether it is still within
// the window's budget.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	recent := l.prune(key, now)

	if len(recent) >= l.maxHits {
		return false
	}

	l.hits[key] = append(recent, now)
	return true
}

// prune drops hits that have left the window. Empty keys are removed so
// the map does not accumulate every caller ever seen.
func (l *Limiter) prune(key string, now time.Time) []time.Time {
	windowStart := now.Add(-l.window)

	recent := l.hits[key][:0]
	for _, hit := range l.hits[key] {
		if hit.After(windowStart) {
			recent = append(recent, hit)
		}
	}

	if len(recent) == 0 {
		delete(l.hits, key)
		return nil
	}

	l.hits[key] = recent
	return recent
}
