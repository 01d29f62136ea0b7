package domain

import "errors"

var (
	ErrEntryNotFound      = errors.New("time entry not found")
	ErrEntryFinished      = errors.New("time entry already finished")
	ErrInvalidMessage     = errors.New("invalid bus message")
	ErrMatterRequired     = errors.New("matter is required")
	ErrMissingEntryHandle = errors.New("time entry service returned no entry handle")
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrTimerRunning       = errors.New("a timer is already running")
)
