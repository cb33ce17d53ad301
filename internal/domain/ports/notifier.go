package ports

import (
	"context"

	"hook-notifier/internal/domain/model"
)

// Notifier sends notifications to downstream channels (e.g. Discord).
// Implementations never return an error; the outcome is classified instead.
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) model.Delivery
}
