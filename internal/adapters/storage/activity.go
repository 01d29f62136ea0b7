package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/ports"
)

// ActivityLog records matter activity for suggestions
type ActivityLog struct {
	db *gorm.DB
}

var (
	_ ports.ActivityReader = (*ActivityLog)(nil)
	_ ports.ActivityWriter = (*ActivityLog)(nil)
)

// NewActivityLog creates an activity log on an open database
func NewActivityLog(db *gorm.DB) *ActivityLog {
	return &ActivityLog{db: db}
}

// Record appends one activity row
func (a *ActivityLog) Record(ctx context.Context, activity domain.MatterActivity) error {
	m := MatterActivityModel{
		MatterID:   activity.MatterID,
		OccurredAt: activity.OccurredAt.UTC(),
		Route:      activity.Route,
	}
	err := withRetry(func() error {
		return a.db.WithContext(ctx).Create(&m).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// Recent returns up to limit rows, newest first
func (a *ActivityLog) Recent(ctx context.Context, limit int) ([]domain.MatterActivity, error) {
	var models []MatterActivityModel
	err := withRetry(func() error {
		q := a.db.WithContext(ctx).Order("occurred_at DESC").Order("id DESC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity: %w", err)
	}

	out := make([]domain.MatterActivity, 0, len(models))
	for _, m := range models {
		out = append(out, matterActivityModelToDomain(m))
	}
	return out, nil
}
