package ports

import (
	"context"

	"github.com/renato0307/billclock/internal/domain"
)

// ActivityReader reads recent matter activity, newest first
type ActivityReader interface {
	Recent(ctx context.Context, limit int) ([]domain.MatterActivity, error)
}

// ActivityWriter records that a matter was worked on
type ActivityWriter interface {
	Record(ctx context.Context, activity domain.MatterActivity) error
}

// MatterSuggester guesses which matter the user wants to track
type MatterSuggester interface {
	Suggest(ctx context.Context, route string) (*domain.MatterSuggestion, error)
}
