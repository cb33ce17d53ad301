package di

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"hook-notifier/internal/adapter/console"
	"hook-notifier/internal/adapter/discord"
	"hook-notifier/internal/adapter/hookinput"
	"hook-notifier/internal/adapter/logging"
	"hook-notifier/internal/adapter/rules"
	"hook-notifier/internal/config"
	"hook-notifier/internal/domain/ports"
)

func provideConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func provideSlogLogger(cfg *config.Config, streams Streams) *slog.Logger {
	errOut := streams.ErrOut
	if errOut == nil {
		errOut = io.Discard
	}
	logger := logging.NewSlog(errOut, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	return logger.With("invocation", uuid.NewString())
}

func provideEventSource(streams Streams) ports.EventSource {
	return hookinput.NewReader(streams.In)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

// provideFilter returns nil when no filter is configured or it fails to
// compile, so notifications keep flowing.
func provideFilter(cfg *config.Config, logger ports.Logger) ports.Filter {
	if cfg.NotifyWhen == "" {
		return nil
	}
	filter, err := rules.NewFilter(cfg.NotifyWhen, logger)
	if err != nil {
		logger.Warn(context.Background(), "ignoring invalid NOTIFY_WHEN", "error", err)
		return nil
	}
	return filter
}

func provideReporter(streams Streams) *console.Reporter {
	return console.NewReporter(streams.Out)
}
