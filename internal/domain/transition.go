package domain

import "time"

// Event is an input to the timer state machine.
// The set of events is closed: only types in this package implement it.
type Event interface {
	Name() string
	isEvent()
}

// StartEvent marks a session as started after the time entry was created
type StartEvent struct {
	EntryID   string
	MatterID  string
	Notes     string
	StartTime time.Time
}

// StopEvent ends the current session
type StopEvent struct{}

// ResetEvent returns to the initial state, keeping only the matter suggestion
type ResetEvent struct{}

// UpdateNotesEvent replaces the session notes
type UpdateNotesEvent struct {
	Notes string
}

// UpdateMatterEvent replaces the selected matter
type UpdateMatterEvent struct {
	MatterID string
}

// SetSuggestedMatterEvent records the suggested matter
type SetSuggestedMatterEvent struct {
	MatterID string
}

// UpdateElapsedEvent stores a freshly derived elapsed value
type UpdateElapsedEvent struct {
	Seconds int64
}

// HydrateEvent replaces the whole state, e.g. from a snapshot
type HydrateEvent struct {
	State TimerState
}

// SetStatusEvent sets the status without touching anything else
type SetStatusEvent struct {
	Status TimerStatus
}

// SetErrorEvent surfaces an error. It never changes IsRunning.
type SetErrorEvent struct {
	Message string
}

// ClearErrorEvent dismisses the current error
type ClearErrorEvent struct{}

// SyncFromTabEvent converges this context onto a session started elsewhere.
// Now is the reading used to recompute elapsed time.
type SyncFromTabEvent struct {
	ActiveEntryID    string
	Now              time.Time
	SelectedMatterID string
	StartTime        time.Time
}

func (StartEvent) Name() string              { return "START" }
func (StopEvent) Name() string               { return "STOP" }
func (ResetEvent) Name() string              { return "RESET" }
func (UpdateNotesEvent) Name() string        { return "UPDATE_NOTES" }
func (UpdateMatterEvent) Name() string       { return "UPDATE_MATTER" }
func (SetSuggestedMatterEvent) Name() string { return "SET_SUGGESTED_MATTER" }
func (UpdateElapsedEvent) Name() string      { return "UPDATE_ELAPSED" }
func (HydrateEvent) Name() string            { return "HYDRATE" }
func (SetStatusEvent) Name() string          { return "SET_STATUS" }
func (SetErrorEvent) Name() string           { return "SET_ERROR" }
func (ClearErrorEvent) Name() string         { return "CLEAR_ERROR" }
func (SyncFromTabEvent) Name() string        { return "SYNC_FROM_TAB" }

func (StartEvent) isEvent()              {}
func (StopEvent) isEvent()               {}
func (ResetEvent) isEvent()              {}
func (UpdateNotesEvent) isEvent()        {}
func (UpdateMatterEvent) isEvent()       {}
func (SetSuggestedMatterEvent) isEvent() {}
func (UpdateElapsedEvent) isEvent()      {}
func (HydrateEvent) isEvent()            {}
func (SetStatusEvent) isEvent()          {}
func (SetErrorEvent) isEvent()           {}
func (ClearErrorEvent) isEvent()         {}
func (SyncFromTabEvent) isEvent()        {}

// Transition is the timer state machine. It is pure and total: it never
// performs I/O and every (state, event) pair yields a state.
func Transition(s TimerState, e Event) TimerState {
	switch ev := e.(type) {
	case StartEvent:
		if ev.StartTime.IsZero() {
			return s
		}
		s.IsRunning = true
		s.Status = StatusRunning
		s.StartTime = ev.StartTime
		s.ElapsedSeconds = 0
		s.SelectedMatterID = ev.MatterID
		s.ActiveEntryID = ev.EntryID
		s.Notes = ev.Notes
		s.Error = ""
		return s

	case StopEvent:
		s.IsRunning = false
		s.Status = StatusIdle
		s.StartTime = time.Time{}
		s.ElapsedSeconds = 0
		s.ActiveEntryID = ""
		s.Notes = ""
		s.Error = ""
		return s

	case ResetEvent:
		next := InitialState()
		next.SuggestedMatterID = s.SuggestedMatterID
		return next

	case UpdateNotesEvent:
		s.Notes = ev.Notes
		return s

	case UpdateMatterEvent:
		s.SelectedMatterID = ev.MatterID
		return s

	case SetSuggestedMatterEvent:
		s.SuggestedMatterID = ev.MatterID
		if s.SelectedMatterID == "" {
			s.SelectedMatterID = ev.MatterID
		}
		return s

	case UpdateElapsedEvent:
		if ev.Seconds < 0 {
			return s
		}
		s.ElapsedSeconds = ev.Seconds
		return s

	case HydrateEvent:
		if !ev.State.Valid() {
			return InitialState()
		}
		next := ev.State
		if next.Status == "" {
			next.Status = statusFor(next.IsRunning)
		}
		return next

	case SetStatusEvent:
		s.Status = ev.Status
		return s

	case SetErrorEvent:
		s.Error = ev.Message
		s.Status = StatusError
		return s

	case ClearErrorEvent:
		s.Error = ""
		s.Status = statusFor(s.IsRunning)
		return s

	case SyncFromTabEvent:
		if ev.StartTime.IsZero() {
			return s
		}
		s.IsRunning = true
		s.Status = StatusRunning
		s.StartTime = ev.StartTime
		s.SelectedMatterID = ev.SelectedMatterID
		s.ActiveEntryID = ev.ActiveEntryID
		s.ElapsedSeconds = ElapsedSeconds(ev.StartTime, ev.Now)
		s.Error = ""
		return s
	}
	return s
}

func statusFor(running bool) TimerStatus {
	if running {
		return StatusRunning
	}
	return StatusIdle
}
