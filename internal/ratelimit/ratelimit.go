// Package ratelimit implements a fixed-window request counter used to
// slow credential stuffing on the auth endpoints. State is in-memory
// and process-local.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// Limiter caps the number of events per key within a fixed window.
// Increment-and-compare happens under a single lock, so two concurrent
// requests can never both slip under the threshold.
type Limiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	interval  time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// New creates a Limiter admitting at most limit events per interval per
// key.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		interval: interval,
		now:      time.Now,
	}
}

// Allow records one event for key and reports whether it is within the
// limit. Expired windows are dropped lazily, at most one full sweep per
// interval, so the map never outgrows the set of keys seen within the
// trailing window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(l.interval)}
		l.windows[key] = w
	}

	w.count++
	return w.count <= l.limit
}

func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.interval {
		return
	}
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}
