package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/ports"
)

// AnalyticsStore records analytics events in the analytics_events table
type AnalyticsStore struct {
	db *gorm.DB
}

var (
	_ ports.AnalyticsSink   = (*AnalyticsStore)(nil)
	_ ports.AnalyticsReader = (*AnalyticsStore)(nil)
)

// NewAnalyticsStore creates an analytics store on an open database
func NewAnalyticsStore(db *gorm.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// Track stores one event
func (s *AnalyticsStore) Track(ctx context.Context, event domain.AnalyticsEvent) error {
	m := analyticsEventToModel(event)
	return withRetry(func() error {
		return s.db.WithContext(ctx).Create(&m).Error
	}, 3)
}

// CountByName counts events per name since the given instant
func (s *AnalyticsStore) CountByName(ctx context.Context, since time.Time) (map[domain.AnalyticsEventName]int, error) {
	var rows []struct {
		Name  string
		Total int
	}
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Model(&AnalyticsEventModel{}).
			Select("name, COUNT(*) AS total").
			Where("occurred_at >= ?", since.UTC()).
			Group("name").
			Scan(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to count analytics events: %w", err)
	}

	counts := make(map[domain.AnalyticsEventName]int, len(rows))
	for _, r := range rows {
		counts[domain.AnalyticsEventName(r.Name)] = r.Total
	}
	return counts, nil
}
