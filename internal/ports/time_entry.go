package ports

import (
	"context"
	"time"

	"github.com/renato0307/billclock/internal/domain"
)

// TimeEntryService creates and finalizes billable time records
type TimeEntryService interface {
	// Create opens a time entry and returns its handle
	Create(ctx context.Context, matterID, notes string) (string, error)

	// Finish closes an entry and returns the recorded minutes
	Finish(ctx context.Context, entryID, notes string) (domain.FinishResult, error)
}

// TimeEntryReader lists recorded time entries
type TimeEntryReader interface {
	List(ctx context.Context, since time.Time) ([]domain.TimeEntry, error)
}

// TimeEntryLedger is the composite interface implemented by the sqlite ledger
type TimeEntryLedger interface {
	TimeEntryService
	TimeEntryReader
}
