package domain

import (
	"fmt"
	"time"
)

// TimerStatus represents the coarse status of a timer context
type TimerStatus string

const (
	StatusError   TimerStatus = "error"
	StatusIdle    TimerStatus = "idle"
	StatusRunning TimerStatus = "running"
	// StatusStopping is also used while a start call is in flight
	StatusStopping TimerStatus = "stopping"
)

// Status symbols (Unicode)
const (
	SymbolError    = "✗"
	SymbolIdle     = "○"
	SymbolRunning  = "●"
	SymbolStopping = "◐"
)

// Symbol returns the status symbol used by the status line and the TUI
func (s TimerStatus) Symbol() string {
	switch s {
	case StatusRunning:
		return SymbolRunning
	case StatusStopping:
		return SymbolStopping
	case StatusError:
		return SymbolError
	default:
		return SymbolIdle
	}
}

// TimerState is the state of the billable timer as seen by one context.
// It is only ever mutated through Transition.
type TimerState struct {
	ActiveEntryID     string
	ElapsedSeconds    int64
	Error             string
	IsRunning         bool
	Notes             string
	SelectedMatterID  string
	StartTime         time.Time
	Status            TimerStatus
	SuggestedMatterID string
}

// InitialState returns the state of a context that has never seen a session
func InitialState() TimerState {
	return TimerState{Status: StatusIdle}
}

// HasStartTime reports whether the absolute start instant is known
func (s TimerState) HasStartTime() bool {
	return !s.StartTime.IsZero()
}

// Valid reports whether the state satisfies the running invariant
func (s TimerState) Valid() bool {
	return !s.IsRunning || s.HasStartTime()
}

// Elapsed returns the elapsed duration derived from the start instant
func (s TimerState) Elapsed(now time.Time) time.Duration {
	if !s.IsRunning {
		return 0
	}
	return time.Duration(ElapsedSeconds(s.StartTime, now)) * time.Second
}

// ElapsedSeconds derives whole elapsed seconds between start and now.
// Never accumulated: a missed tick or a suspended process cannot skew it.
// Clock skew that puts start in the future yields 0.
func ElapsedSeconds(start, now time.Time) int64 {
	if start.IsZero() {
		return 0
	}
	ms := now.Sub(start).Milliseconds()
	if ms <= 0 {
		return 0
	}
	return ms / 1000
}

// FormatElapsed renders seconds as HH:MM:SS
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
