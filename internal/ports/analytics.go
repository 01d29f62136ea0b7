package ports

import (
	"context"
	"time"

	"github.com/renato0307/billclock/internal/domain"
)

// AnalyticsSink receives fire-and-forget product events
type AnalyticsSink interface {
	Track(ctx context.Context, event domain.AnalyticsEvent) error
}

// AnalyticsReader aggregates recorded events
type AnalyticsReader interface {
	CountByName(ctx context.Context, since time.Time) (map[domain.AnalyticsEventName]int, error)
}
