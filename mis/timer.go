package mis

import (
	"context"
	"time"
)

// Timer is the cooperative time budget polled by the engine.
type Timer interface {
	IsExpired() bool
}

// CountdownTimer expires a fixed duration after its creation.
type CountdownTimer struct {
	start time.Time
	limit time.Duration
	now   func() time.Time
}

// NewCountdownTimer starts a countdown of d. A non-positive d never expires.
func NewCountdownTimer(d time.Duration) *CountdownTimer {
	return &CountdownTimer{start: time.Now(), limit: d, now: time.Now}
}

// IsExpired reports whether the budget is used up.
func (t *CountdownTimer) IsExpired() bool {
	if t.limit <= 0 {
		return false
	}

	return t.now().Sub(t.start) >= t.limit
}

// Remaining returns the unused budget, 0 once expired.
// Unlimited timers report the largest duration.
func (t *CountdownTimer) Remaining() time.Duration {
	if t.limit <= 0 {
		return time.Duration(1<<63 - 1)
	}
	left := t.limit - t.now().Sub(t.start)
	if left < 0 {
		return 0
	}

	return left
}

// budget joins the optional timer and context into one expiry test.
type budget struct {
	timer Timer
	ctx   context.Context
	polls int
}

func (b *budget) expired() bool {
	if b.timer != nil && b.timer.IsExpired() {
		return true
	}

	return b.ctx != nil && b.ctx.Err() != nil
}

// sparse polls expiry only every 64 calls; used inside hot inner loops.
func (b *budget) sparse() bool {
	b.polls++
	if b.polls&63 != 0 {
		return false
	}

	return b.expired()
}
