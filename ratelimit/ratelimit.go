// Package ratelimit enforces sliding-window request budgets per client
// identity. 인메모리로 동작하며 재시작하면 카운터가 초기화된다 — 과금이
// 아니라 남용 방지 목적이므로 영속화하지 않는다.
package ratelimit

import (
	"sync"
	"time"
)

// Quota is one counter a request is subject to: at most Limit admissions per
// Key within the trailing Window.
type Quota struct {
	Key    string
	Limit  int
	Window time.Duration
}

// Limiter keeps a pruned timestamp list per key. One mutex guards all keys;
// prune+append is O(window size) and windows are small in practice.
type Limiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time

	// now is swappable for tests.
	now func() time.Time
}

func NewLimiter() *Limiter {
	return &Limiter{
		hits: make(map[string][]time.Time),
		now:  time.Now,
	}
}

// Allow admits and records a single-counter request. Limit <= 0 means
// unlimited. On rejection nothing is recorded, so a throttled client does
// not push its own window further out.
func (l *Limiter) Allow(key string, limit int, window time.Duration) bool {
	return l.AllowAll([]Quota{{Key: key, Limit: limit, Window: window}})
}

// AllowAll admits a request only if every counter has room, then records the
// timestamp on all of them. Check-all-then-record-all under one lock keeps
// the counters consistent with each other.
func (l *Limiter) AllowAll(quotas []Quota) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	for _, q := range quotas {
		if q.Limit <= 0 {
			continue
		}
		kept := prune(l.hits[q.Key], now.Add(-q.Window))
		l.hits[q.Key] = kept
		if len(kept) >= q.Limit {
			return false
		}
	}

	for _, q := range quotas {
		if q.Limit <= 0 {
			continue
		}
		l.hits[q.Key] = append(l.hits[q.Key], now)
	}
	return true
}

// SetNow overrides the clock; tests only.
func (l *Limiter) SetNow(now func() time.Time) {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}

// prune drops timestamps at or before the cutoff. The list is append-only
// and therefore sorted, so a single scan finds the boundary.
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return ts
	}
	return append(ts[:0:0], ts[i:]...)
}
