package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is the durable, minimal record of a running session.
// Only running sessions are persisted; "no snapshot" means "no active session".
type Snapshot struct {
	ActiveEntryID    *string `json:"activeEntryId"`
	IsRunning        bool    `json:"isRunning"`
	Notes            string  `json:"notes"`
	PersistedAt      int64   `json:"persistedAt"`
	SelectedMatterID *string `json:"selectedMatterId"`
	StartTime        *int64  `json:"startTime"`
}

// NewSnapshot captures the persistable fields of a state at the given instant
func NewSnapshot(s TimerState, now time.Time) Snapshot {
	snap := Snapshot{
		ActiveEntryID:    optionalString(s.ActiveEntryID),
		IsRunning:        s.IsRunning,
		Notes:            s.Notes,
		PersistedAt:      now.UnixMilli(),
		SelectedMatterID: optionalString(s.SelectedMatterID),
	}
	if s.HasStartTime() {
		ms := s.StartTime.UnixMilli()
		snap.StartTime = &ms
	}
	return snap
}

// StartInstant returns the start time, or the zero time when absent
func (s Snapshot) StartInstant() time.Time {
	if s.StartTime == nil {
		return time.Time{}
	}
	return time.UnixMilli(*s.StartTime)
}

// PersistedInstant returns when the snapshot was written
func (s Snapshot) PersistedInstant() time.Time {
	return time.UnixMilli(s.PersistedAt)
}

// ToState rebuilds a timer state with elapsed time recomputed at now.
// A snapshot claiming to run without a start time yields the initial state.
func (s Snapshot) ToState(now time.Time) TimerState {
	st := InitialState()
	if !s.IsRunning {
		return st
	}
	start := s.StartInstant()
	if start.IsZero() {
		return st
	}
	st.IsRunning = true
	st.Status = StatusRunning
	st.StartTime = start
	st.ElapsedSeconds = ElapsedSeconds(start, now)
	st.Notes = s.Notes
	st.SelectedMatterID = derefString(s.SelectedMatterID)
	st.ActiveEntryID = derefString(s.ActiveEntryID)
	return st
}

// EncodeSnapshot serializes a snapshot to its persisted JSON form
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted snapshot. Anything that is not a JSON
// object with a boolean isRunning field is reported as ErrSnapshotNotFound.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, ErrSnapshotNotFound
	}
	raw, ok := probe["isRunning"]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	var running *bool
	if err := json.Unmarshal(raw, &running); err != nil || running == nil {
		return nil, ErrSnapshotNotFound
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, ErrSnapshotNotFound
	}
	return &snap, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
