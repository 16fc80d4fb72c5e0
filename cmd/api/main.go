package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"carbontradle.org/internal/app"
	"carbontradle.org/internal/appconf"
	"carbontradle.org/internal/assistant"
	"carbontradle.org/internal/game"
	"carbontradle.org/internal/logging"
	"carbontradle.org/internal/metrics"
	"carbontradle.org/internal/restapi"
)

// apiKeyEnv names the environment variable holding the completion API key.
const apiKeyEnv = "OPENAI_API_KEY"

const shutdownTimeout = 30 * time.Second

func main() {
	// A missing .env is normal outside local development
	if err := loadEnvIfExists(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
		os.Exit(1)
	}

	cfg, logLevel, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(logLevel))
	slog.SetDefault(logger)

	application, err := buildApplication(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to initialize application", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      restapi.NewRestAPI(application).Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.CompletionTimeout + 10*time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// loadEnvIfExists loads variables from path when the file exists. Variables
// already set in the environment win.
func loadEnvIfExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// parseConfig reads the server settings from command-line flags. Secrets
// come from getenv.
func parseConfig(args []string, getenv func(string) string) (app.Config, string, error) {
	var (
		cfg      app.Config
		env      string
		logLevel string
	)

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.Port, "port", 5000, "API server port")
	fs.StringVar(&env, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&cfg.Model, "model", assistant.DefaultModel, "Chat-completion model")
	fs.StringVar(&cfg.OpenAIBaseURL, "openai-base-url", assistant.DefaultBaseURL, "Base URL of the chat-completion API")
	fs.DurationVar(&cfg.CompletionTimeout, "completion-timeout", assistant.DefaultTimeout, "Timeout for one chat-completion call")
	fs.StringVar(&cfg.CoordinatesPath, "coordinates", "", "CSV of country centroids; enables guess feedback")
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return cfg, "", err
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return cfg, "", fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.CompletionTimeout <= 0 {
		return cfg, "", fmt.Errorf("completion timeout must be positive, got %s", cfg.CompletionTimeout)
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.APIKey = getenv(apiKeyEnv)

	return cfg, logLevel, nil
}

// buildApplication wires the relay's dependencies. A configured coordinates
// file that cannot be read is fatal; without one guess feedback is disabled.
func buildApplication(cfg app.Config, logger *slog.Logger) (*app.Application, error) {
	if cfg.APIKey == "" {
		logger.Warn("completion API key is not set", slog.String("env_var", apiKeyEnv))
	}

	var coords game.Coordinates
	if cfg.CoordinatesPath != "" {
		var err error
		coords, err = game.LoadCoordinates(cfg.CoordinatesPath)
		if err != nil {
			return nil, err
		}
		logging.LogOperation(logger, "coordinates_loaded",
			slog.String("path", cfg.CoordinatesPath),
			slog.Int("countries", len(coords)))
	} else {
		logger.Info("guess feedback disabled: no coordinates file configured")
	}

	return &app.Application{
		Config: cfg,
		Logger: logger,
		Assistant: assistant.NewClient(assistant.Config{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.CompletionTimeout,
		}, logger),
		Metrics:     metrics.New(),
		Coordinates: coords,
	}, nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
