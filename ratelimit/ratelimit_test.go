package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clip-letter/ratelimit"
)

func fakeClock(start time.Time) (func() time.Time, func(d time.Duration)) {
	current := start
	return func() time.Time { return current },
		func(d time.Duration) { current = current.Add(d) }
}

func TestLimitPlusOneRejected(t *testing.T) {
	l := ratelimit.NewLimiter()
	now, _ := fakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	l.SetNow(now)

	const limit = 5
	for i := 0; i < limit; i++ {
		assert.True(t, l.Allow("ip:1.2.3.4", limit, time.Minute), "request %d should be admitted", i+1)
	}
	assert.False(t, l.Allow("ip:1.2.3.4", limit, time.Minute), "request limit+1 must be rejected")
}

func TestWindowExpiryReadmits(t *testing.T) {
	l := ratelimit.NewLimiter()
	now, advance := fakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	l.SetNow(now)

	assert.True(t, l.Allow("k", 1, time.Minute))
	assert.False(t, l.Allow("k", 1, time.Minute))

	advance(time.Minute + time.Second)
	assert.True(t, l.Allow("k", 1, time.Minute))
}

func TestRejectionDoesNotRecord(t *testing.T) {
	l := ratelimit.NewLimiter()
	now, advance := fakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	l.SetNow(now)

	assert.True(t, l.Allow("k", 1, time.Minute))
	// hammering while throttled must not extend the window
	for i := 0; i < 10; i++ {
		advance(time.Second)
		l.Allow("k", 1, time.Minute)
	}
	advance(51 * time.Second) // 61s after the single admitted hit
	assert.True(t, l.Allow("k", 1, time.Minute))
}

func TestAllowAllRequiresEveryCounter(t *testing.T) {
	l := ratelimit.NewLimiter()
	now, _ := fakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	l.SetNow(now)

	quotas := []ratelimit.Quota{
		{Key: "ip:1.2.3.4", Limit: 10, Window: time.Minute},
		{Key: "user:u1:minute", Limit: 2, Window: time.Minute},
		{Key: "user:u1:day", Limit: 100, Window: 24 * time.Hour},
	}

	assert.True(t, l.AllowAll(quotas))
	assert.True(t, l.AllowAll(quotas))
	// user minute counter is exhausted; the whole request must be rejected
	assert.False(t, l.AllowAll(quotas))

	// and the rejection must not have burned the other counters
	assert.True(t, l.Allow("ip:1.2.3.4", 3, time.Minute))
}

func TestZeroLimitMeansUnlimited(t *testing.T) {
	l := ratelimit.NewLimiter()
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("k", 0, time.Minute))
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := ratelimit.NewLimiter()
	now, _ := fakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	l.SetNow(now)

	assert.True(t, l.Allow("a", 1, time.Minute))
	assert.True(t, l.Allow("b", 1, time.Minute))
	assert.False(t, l.Allow("a", 1, time.Minute))
}
