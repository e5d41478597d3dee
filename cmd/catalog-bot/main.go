package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/moonread/catalog-bot/internal/app"
	"github.com/moonread/catalog-bot/internal/platform/config"
)

func main() {
	mode := flag.String("mode", "bot", "Service mode (bot, check)")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, &logger)

	if err := runMode(ctx, application, *mode, &logger); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("application stopped")
			return
		}

		logger.Fatal().Err(err).Msg("application error")
	}
}

func newLogger(appEnv string) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func runMode(ctx context.Context, application *app.App, mode string, logger *zerolog.Logger) error {
	switch mode {
	case "bot":
		// The catalog must be in place before anything, including readiness, reports healthy.
		if err := application.LoadCatalog(); err != nil {
			return err
		}

		go func() {
			if err := application.StartHealthServer(ctx); err != nil {
				logger.Error().Err(err).Msg("health check server error")
			}
		}()

		return application.RunBot(ctx)
	case "check":
		return application.RunCheck()
	default:
		log.Fatalf("Usage: %s --mode=[bot|check]", os.Args[0])

		return nil
	}
}
