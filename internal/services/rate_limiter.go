package services

import (
	"time"

	"golang.org/x/time/rate"
)

// ActionRateLimiter enforces a cooldown window between accepted start and
// stop actions. Calls inside the window are rejected without side effects.
type ActionRateLimiter struct {
	limiter *rate.Limiter
}

// NewActionRateLimiter creates a limiter admitting one action per cooldown.
// A non-positive cooldown admits everything.
func NewActionRateLimiter(cooldown time.Duration) *ActionRateLimiter {
	if cooldown <= 0 {
		return &ActionRateLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &ActionRateLimiter{limiter: rate.NewLimiter(rate.Every(cooldown), 1)}
}

// Allow reports whether an action at now is outside the cooldown window.
// An accepted action starts a new window.
func (l *ActionRateLimiter) Allow(now time.Time) bool {
	return l.limiter.AllowN(now, 1)
}
