package services

import (
	"context"
	"fmt"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/ports"
)

// DefaultActivityWindow is how many recent activities a suggestion considers
const DefaultActivityWindow = 50

// MatterSuggestionService suggests the matter a user most likely wants to track
type MatterSuggestionService struct {
	activity ports.ActivityReader
	window   int
}

var _ ports.MatterSuggester = (*MatterSuggestionService)(nil)

// NewMatterSuggestionService creates a new MatterSuggestionService
func NewMatterSuggestionService(activity ports.ActivityReader, window int) *MatterSuggestionService {
	if window <= 0 {
		window = DefaultActivityWindow
	}
	return &MatterSuggestionService{
		activity: activity,
		window:   window,
	}
}

// Suggest returns a suggestion for route, or nil when there is no activity
func (s *MatterSuggestionService) Suggest(ctx context.Context, route string) (*domain.MatterSuggestion, error) {
	recent, err := s.activity.Recent(ctx, s.window)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent activity: %w", err)
	}
	return SuggestMatter(recent, route), nil
}

// SuggestMatter picks the matter seen most often on route, breaking ties by
// recency, and falls back to the most recent matter overall. Activity must
// be ordered newest first.
func SuggestMatter(recent []domain.MatterActivity, route string) *domain.MatterSuggestion {
	if len(recent) == 0 {
		return nil
	}

	if route != "" {
		counts := make(map[string]int)
		var order []string
		for _, a := range recent {
			if a.Route != route || a.MatterID == "" {
				continue
			}
			if counts[a.MatterID] == 0 {
				order = append(order, a.MatterID)
			}
			counts[a.MatterID]++
		}

		best := ""
		for _, id := range order {
			if best == "" || counts[id] > counts[best] {
				best = id
			}
		}
		if best != "" {
			return &domain.MatterSuggestion{MatterID: best, Reason: domain.ReasonRouteMatch}
		}
	}

	for _, a := range recent {
		if a.MatterID != "" {
			return &domain.MatterSuggestion{MatterID: a.MatterID, Reason: domain.ReasonMostRecent}
		}
	}
	return nil
}
