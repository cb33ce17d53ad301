package ports

import (
	"context"

	"hook-notifier/internal/domain/model"
)

// Reporter prints human-readable progress for the invoking process.
type Reporter interface {
	InputFallback(ctx context.Context, err error)
	Outcome(ctx context.Context, delivery model.Delivery)
}
