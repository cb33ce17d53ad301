package ports

import (
	"context"

	"hook-notifier/internal/domain/model"
)

// Filter decides whether an activity is worth notifying about.
type Filter interface {
	Allow(ctx context.Context, activity model.Activity) bool
}
