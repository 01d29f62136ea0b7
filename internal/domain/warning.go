package domain

import "time"

// WarningType identifies a duration warning
type WarningType string

const (
	WarningAutoStopped WarningType = "auto_stopped"
	WarningEightHour   WarningType = "eight_hour"
)

// Default duration thresholds
const (
	DefaultAutoStopThreshold = 24 * time.Hour
	DefaultWarningThreshold  = 8 * time.Hour
)

// WarningInfo is raised by the duration guard
type WarningInfo struct {
	ElapsedSeconds int64
	TriggeredAt    time.Time
	Type           WarningType
}

// DurationThresholds configures the duration guard
type DurationThresholds struct {
	AutoStop time.Duration
	Warning  time.Duration
}

// DefaultDurationThresholds returns the 8h warning and 24h auto-stop thresholds
func DefaultDurationThresholds() DurationThresholds {
	return DurationThresholds{
		AutoStop: DefaultAutoStopThreshold,
		Warning:  DefaultWarningThreshold,
	}
}

// GuardDecision is the outcome of evaluating elapsed time against thresholds
type GuardDecision struct {
	AutoStop bool
	Warning  WarningType
}

// None reports whether the guard has nothing to do
func (d GuardDecision) None() bool {
	return !d.AutoStop && d.Warning == ""
}

// EvaluateDuration is the pure duration guard. The auto-stop threshold is
// decisive and wins over the warning; the warning fires only when the
// session has not been warned yet.
func EvaluateDuration(elapsedSeconds int64, alreadyWarned bool, t DurationThresholds) GuardDecision {
	elapsed := time.Duration(elapsedSeconds) * time.Second
	if t.AutoStop > 0 && elapsed >= t.AutoStop {
		return GuardDecision{AutoStop: true, Warning: WarningAutoStopped}
	}
	if t.Warning > 0 && elapsed >= t.Warning && !alreadyWarned {
		return GuardDecision{Warning: WarningEightHour}
	}
	return GuardDecision{}
}
