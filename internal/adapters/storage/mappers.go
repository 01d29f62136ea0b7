package storage

import (
	"encoding/json"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
)

// timeEntryModelToDomain converts a TimeEntryModel (GORM) to domain.TimeEntry
func timeEntryModelToDomain(m TimeEntryModel) domain.TimeEntry {
	return domain.TimeEntry{
		BillableMinutes: m.BillableMinutes,
		FinishedAt:      m.FinishedAt,
		ID:              m.ID,
		MatterID:        m.MatterID,
		Minutes:         m.Minutes,
		Notes:           m.Notes,
		StartedAt:       m.StartedAt,
	}
}

// analyticsEventToModel converts a domain.AnalyticsEvent to its GORM model
func analyticsEventToModel(e domain.AnalyticsEvent) AnalyticsEventModel {
	props := "{}"
	if len(e.Properties) > 0 {
		data, err := json.Marshal(e.Properties)
		if err != nil {
			logging.Logger.Debug("Dropping unserializable analytics properties", "event", e.Name, "error", err)
		} else {
			props = string(data)
		}
	}
	return AnalyticsEventModel{
		Name:       string(e.Name),
		OccurredAt: e.OccurredAt.UTC(),
		Properties: props,
		Route:      e.Route,
	}
}

// matterActivityModelToDomain converts a MatterActivityModel to domain.MatterActivity
func matterActivityModelToDomain(m MatterActivityModel) domain.MatterActivity {
	return domain.MatterActivity{
		MatterID:   m.MatterID,
		OccurredAt: m.OccurredAt,
		Route:      m.Route,
	}
}
