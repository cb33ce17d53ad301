package usecase

import (
	"context"
	"time"

	"hook-notifier/internal/config"
	"hook-notifier/internal/domain/model"
	"hook-notifier/internal/domain/ports"
)

const (
	fallbackEventName = "PostToolUse"
	fallbackToolName  = "Unknown Tool"
	fallbackAgentName = "Claude Code Agent"
)

// Forwarder turns one hook event into one webhook delivery.
type Forwarder struct {
	cfg      *config.Config
	source   ports.EventSource
	notifier ports.Notifier
	filter   ports.Filter
	reporter ports.Reporter
	logger   ports.Logger
	now      func() time.Time
}

// NewForwarder constructs a Forwarder use case. filter may be nil.
func NewForwarder(
	cfg *config.Config,
	source ports.EventSource,
	notifier ports.Notifier,
	filter ports.Filter,
	reporter ports.Reporter,
	logger ports.Logger,
) *Forwarder {
	return &Forwarder{
		cfg:      cfg,
		source:   source,
		notifier: notifier,
		filter:   filter,
		reporter: reporter,
		logger:   logger,
		now:      time.Now,
	}
}

// Run reads the triggering event and forwards it. It never fails; the
// returned delivery describes what happened.
func (f *Forwarder) Run(ctx context.Context) model.Delivery {
	return f.forward(ctx, f.acquire(ctx))
}

// Forward sends a notification for an explicitly supplied event.
func (f *Forwarder) Forward(ctx context.Context, event model.HookEvent) model.Delivery {
	summary, url := applyOverrides(Summarize(event), f.cfg)
	return f.forward(ctx, f.activity(event, summary, url))
}

// acquire reads the event source, falling back to configured values when the
// input is missing or malformed.
func (f *Forwarder) acquire(ctx context.Context) model.Activity {
	var (
		event model.HookEvent
		err   error
	)
	if f.source != nil {
		event, err = f.source.ReadEvent(ctx)
	}
	if f.source == nil || err != nil {
		if f.reporter != nil {
			f.reporter.InputFallback(ctx, err)
		}
		f.logger.Warn(ctx, "hook input unavailable, using environment", "error", err)
		event = f.fallbackEvent()
	} else {
		f.logger.Debug(ctx, "hook input parsed", "event", event.EventName, "tool", event.ToolName)
	}

	summary, url := applyOverrides(Summarize(event), f.cfg)
	return f.activity(event, summary, url)
}

func (f *Forwarder) fallbackEvent() model.HookEvent {
	event := model.HookEvent{
		EventName: fallbackEventName,
		ToolName:  fallbackToolName,
	}
	if f.cfg != nil {
		if f.cfg.HookEvent != nil {
			event.EventName = *f.cfg.HookEvent
		}
		if f.cfg.ToolName != nil {
			event.ToolName = *f.cfg.ToolName
		}
	}
	return event
}

func (f *Forwarder) activity(event model.HookEvent, summary model.Summary, url string) model.Activity {
	agent := fallbackAgentName
	if f.cfg != nil && f.cfg.AgentName != nil {
		agent = *f.cfg.AgentName
	}
	return model.Activity{
		EventName: event.EventName,
		ToolName:  event.ToolName,
		AgentName: agent,
		Title:     summary.Title,
		Details:   summary.Details,
		URL:       url,
		FilePath:  event.ToolInput.FilePath,
		Command:   event.ToolInput.Command,
	}
}

func (f *Forwarder) forward(ctx context.Context, activity model.Activity) model.Delivery {
	began := time.Now()

	var delivery model.Delivery
	if f.filter != nil && !f.filter.Allow(ctx, activity) {
		delivery = model.Delivery{Outcome: model.OutcomeSkipped, Reason: "filtered by NOTIFY_WHEN"}
	} else {
		notification := BuildNotification(activity, f.now())
		delivery = f.notifier.Send(ctx, notification)
	}

	if f.reporter != nil {
		f.reporter.Outcome(ctx, delivery)
	}
	f.logger.Info(ctx, "hook notification finished",
		"outcome", delivery.Outcome.String(),
		"tool", activity.ToolName,
		"status", delivery.StatusCode,
		"duration", time.Since(began),
	)
	return delivery
}
