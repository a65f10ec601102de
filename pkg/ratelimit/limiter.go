// Package ratelimit implements an in-process fixed-window rate limiter.
//
// State is process-local and rebuilt from empty on restart; being lenient
// across restarts is an accepted trade. Horizontal scale-out would need this
// state externalized.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// Limiter is a fixed-window counter keyed by caller identity
type Limiter struct {
	mu           sync.Mutex
	windows      map[string]*window
	windowSize   time.Duration
	maxRequests  int
	maxStoreSize int

	now func() time.Time // test hook
}

// New creates a limiter admitting maxRequests per windowSize per key, with
// at most maxStoreSize tracked keys
func New(windowSize time.Duration, maxRequests, maxStoreSize int) *Limiter {
	return &Limiter{
		windows:      make(map[string]*window),
		windowSize:   windowSize,
		maxRequests:  maxRequests,
		maxStoreSize: maxStoreSize,
		now:          time.Now,
	}
}

// Allow reports whether a request under key is admitted in the current
// window. The first request of a new or rotated window always passes.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.windowSize {
		if !ok && len(l.windows) >= l.maxStoreSize {
			l.compactLocked(now)
		}
		l.windows[key] = &window{start: now, count: 1}
		return true
	}

	if w.count >= l.maxRequests {
		return false
	}
	w.count++
	return true
}

// compactLocked drops expired windows; if the store is still at capacity it
// evicts the oldest entries until one slot is free
func (l *Limiter) compactLocked(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.windowSize {
			delete(l.windows, key)
		}
	}
	for len(l.windows) >= l.maxStoreSize {
		oldestKey := ""
		var oldest time.Time
		for key, w := range l.windows {
			if oldestKey == "" || w.start.Before(oldest) {
				oldestKey = key
				oldest = w.start
			}
		}
		delete(l.windows, oldestKey)
	}
}

// Size returns the number of tracked keys
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
