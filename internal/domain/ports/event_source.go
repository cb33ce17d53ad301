package ports

import (
	"context"

	"hook-notifier/internal/domain/model"
)

// EventSource yields the hook event that triggered this invocation.
type EventSource interface {
	ReadEvent(ctx context.Context) (model.HookEvent, error)
}
