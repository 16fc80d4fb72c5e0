package app

import (
	"log/slog"
	"time"

	"carbontradle.org/internal/appconf"
	"carbontradle.org/internal/assistant"
	"carbontradle.org/internal/game"
	"carbontradle.org/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config    Config
	Logger    *slog.Logger
	Assistant assistant.Completer
	Metrics   *metrics.Metrics
	// Coordinates backs guess feedback; nil when no coordinates file is
	// configured.
	Coordinates game.Coordinates
}

// Config holds the relay server settings read from command-line flags and
// the environment.
type Config struct {
	Port int
	Env  appconf.Environment

	Model         string
	OpenAIBaseURL string
	// APIKey authenticates against the completion API. It is never logged.
	APIKey string

	CompletionTimeout time.Duration
	CoordinatesPath   string
}

// GuessFeedbackEnabled reports whether coordinates were loaded.
func (app *Application) GuessFeedbackEnabled() bool {
	return len(app.Coordinates) > 0
}
