package app

import (
	"context"

	"hook-notifier/internal/domain/model"
	"hook-notifier/internal/domain/ports"
	"hook-notifier/internal/usecase"
)

// testEvent is the synthetic event sent by the test command.
var testEvent = model.HookEvent{
	EventName: "Test",
	ToolName:  "hook-notifier",
}

// App manages one forwarder invocation.
type App struct {
	forwarder *usecase.Forwarder
	logger    ports.Logger
}

// New constructs an App instance.
func New(forwarder *usecase.Forwarder, logger ports.Logger) *App {
	return &App{
		forwarder: forwarder,
		logger:    logger,
	}
}

// Run forwards the hook event read from the configured input.
func (a *App) Run(ctx context.Context) model.Delivery {
	a.logger.Debug(ctx, "forwarding hook event")
	return a.forwarder.Run(ctx)
}

// Test sends a synthetic notification to verify the webhook setup.
func (a *App) Test(ctx context.Context) model.Delivery {
	a.logger.Info(ctx, "sending test notification")
	return a.forwarder.Forward(ctx, testEvent)
}
