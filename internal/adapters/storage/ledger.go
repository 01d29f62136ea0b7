package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ports"
)

// Ledger is the sqlite-backed time-entry service
type Ledger struct {
	clock ports.Clock
	db    *gorm.DB
}

var _ ports.TimeEntryLedger = (*Ledger)(nil)

// NewLedger creates a ledger on an open database
func NewLedger(db *gorm.DB, clock ports.Clock) *Ledger {
	return &Ledger{clock: clock, db: db}
}

// Create opens a time entry for matterID and returns its id
func (l *Ledger) Create(ctx context.Context, matterID, notes string) (string, error) {
	if matterID == "" {
		return "", domain.ErrMatterRequired
	}

	m := TimeEntryModel{
		ID:        uuid.New().String(),
		MatterID:  matterID,
		Notes:     notes,
		StartedAt: l.clock.Now().UTC(),
	}
	err := withRetry(func() error {
		return l.db.WithContext(ctx).Create(&m).Error
	}, 3)
	if err != nil {
		return "", fmt.Errorf("failed to create time entry: %w", err)
	}

	logging.Logger.Info("Time entry created", "entry_id", m.ID, "matter_id", matterID)
	return m.ID, nil
}

// Finish closes an open entry. Empty notes keep the notes given at creation.
func (l *Ledger) Finish(ctx context.Context, entryID, notes string) (domain.FinishResult, error) {
	var result domain.FinishResult

	err := withRetry(func() error {
		return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var m TimeEntryModel
			if err := tx.Where("id = ?", entryID).First(&m).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrEntryNotFound
				}
				return err
			}
			if m.FinishedAt != nil {
				return domain.ErrEntryFinished
			}

			now := l.clock.Now().UTC()
			result = domain.ComputeMinutes(now.Sub(m.StartedAt))

			updates := map[string]any{
				"billable_minutes": result.BillableMinutes,
				"finished_at":      now,
				"minutes":          result.ActualMinutes,
			}
			if notes != "" {
				updates["notes"] = notes
			}
			return tx.Model(&TimeEntryModel{}).Where("id = ?", entryID).Updates(updates).Error
		})
	}, 3)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) || errors.Is(err, domain.ErrEntryFinished) {
			return domain.FinishResult{}, fmt.Errorf("%w: %s", err, entryID)
		}
		return domain.FinishResult{}, fmt.Errorf("failed to finish time entry: %w", err)
	}

	logging.Logger.Info("Time entry finished",
		"entry_id", entryID,
		"minutes", result.ActualMinutes,
		"billable_minutes", result.BillableMinutes)
	return result, nil
}

// List returns entries started at or after since, newest first
func (l *Ledger) List(ctx context.Context, since time.Time) ([]domain.TimeEntry, error) {
	var models []TimeEntryModel
	err := withRetry(func() error {
		return l.db.WithContext(ctx).
			Where("started_at >= ?", since.UTC()).
			Order("started_at DESC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	entries := make([]domain.TimeEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, timeEntryModelToDomain(m))
	}
	return entries, nil
}
