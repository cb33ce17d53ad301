//go:build wireinject

package di

import (
	"io"

	"github.com/google/wire"

	"hook-notifier/internal/adapter/console"
	"hook-notifier/internal/adapter/logging"
	"hook-notifier/internal/app"
	"hook-notifier/internal/domain/ports"
	"hook-notifier/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(opts Options, streams Streams) (*app.App, error) {
	wire.Build(
		provideConfig,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideEventSource,
		provideNotifier,
		provideFilter,
		provideReporter,
		wire.Bind(new(ports.Reporter), new(*console.Reporter)),
		usecase.NewForwarder,
		app.New,
	)
	return nil, nil
}

// Options carry command-line settings that shape the configuration.
type Options struct {
	ConfigPath string
	Verbose    bool
}

// Streams are the process streams the application reads from and writes to.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}
