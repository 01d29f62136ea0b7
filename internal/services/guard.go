package services

import "github.com/renato0307/billclock/internal/domain"

// DurationGuard tracks which duration decisions were already acted upon in
// the current session. It is not safe for concurrent use; the engine calls
// it under its own lock.
type DurationGuard struct {
	autoStopped bool
	thresholds  domain.DurationThresholds
	warned      bool
}

// NewDurationGuard creates a guard for the given thresholds
func NewDurationGuard(thresholds domain.DurationThresholds) *DurationGuard {
	return &DurationGuard{thresholds: thresholds}
}

// Check evaluates elapsed time and returns the decision to act on.
// The warning and the auto-stop each fire at most once per session.
func (g *DurationGuard) Check(elapsedSeconds int64) domain.GuardDecision {
	d := domain.EvaluateDuration(elapsedSeconds, g.warned, g.thresholds)
	if d.AutoStop {
		if g.autoStopped {
			return domain.GuardDecision{}
		}
		g.autoStopped = true
		g.warned = true
		return d
	}
	if d.Warning != "" {
		g.warned = true
	}
	return d
}

// Reset clears the per-session flags. Called when a new session starts.
func (g *DurationGuard) Reset() {
	g.autoStopped = false
	g.warned = false
}
