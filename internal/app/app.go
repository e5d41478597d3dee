// Package app provides the main application bootstrap and runtime orchestration.
//
// The App type owns the catalog snapshot store and wires it to the query engine,
// the renderer and the Telegram bot. It exposes two modes:
//
//   - Bot mode: answers catalog commands over the Telegram Bot API
//   - Check mode: loads the catalog once, reports what it found and exits
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/moonread/catalog-bot/internal/bot"
	"github.com/moonread/catalog-bot/internal/catalog"
	coreerrors "github.com/moonread/catalog-bot/internal/core/errors"
	"github.com/moonread/catalog-bot/internal/output/render"
	"github.com/moonread/catalog-bot/internal/platform/config"
	"github.com/moonread/catalog-bot/internal/platform/observability"
	"github.com/moonread/catalog-bot/internal/platform/worker"
)

const (
	logFieldPath    = "path"
	logFieldEntries = "entries"
	logFieldSkipped = "skipped"
	logFieldBuckets = "buckets"

	reloadWorkerName = "catalog-reload"
)

// fileState identifies a version of the catalog file.
type fileState struct {
	modTime time.Time
	size    int64
}

// App holds the application dependencies and provides methods to run different modes.
type App struct {
	cfg      *config.Config
	store    *catalog.Store
	engine   *catalog.Engine
	renderer *render.Renderer
	logger   *zerolog.Logger

	// loaded is only touched by LoadCatalog and the reload watcher, which never run concurrently.
	loaded fileState
}

// New creates a new App instance. No catalog is loaded until LoadCatalog is called.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	store := &catalog.Store{}
	renderer := render.New(render.Options{
		SearchLimit:    cfg.SearchMaxResults,
		BrowseLimit:    cfg.BrowseMaxResults,
		SupportContact: cfg.SupportContact,
	})

	return &App{
		cfg:      cfg,
		store:    store,
		engine:   catalog.NewEngine(store),
		renderer: renderer,
		logger:   logger,
	}
}

// LoadCatalog loads the catalog file and installs it as the active snapshot.
// An error here means no catalog is available and the bot must not start.
func (a *App) LoadCatalog() error {
	state, err := statFile(a.cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w: %w", coreerrors.ErrCatalogIO, err)
	}

	res, err := catalog.Load(a.cfg.CatalogPath, a.logger)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	a.install(res)
	a.loaded = state

	return nil
}

func (a *App) install(res catalog.LoadResult) {
	a.store.Swap(res.Catalog)

	observability.CatalogEntries.Set(float64(res.Catalog.Len()))
	observability.CatalogSkippedLines.Set(float64(res.Skipped))

	a.logger.Info().
		Str(logFieldPath, a.cfg.CatalogPath).
		Int(logFieldEntries, res.Catalog.Len()).
		Int(logFieldSkipped, res.Skipped).
		Msg("Catalog loaded")
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	if a.cfg.HealthPort == 0 {
		return nil
	}

	srv := observability.NewServer(a.cfg.HealthPort, a.store.Loaded, a.logger)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("health server start: %w", err)
	}

	return nil
}

// RunBot answers Telegram commands until ctx is canceled.
func (a *App) RunBot(ctx context.Context) error {
	if !a.store.Loaded() {
		if err := a.LoadCatalog(); err != nil {
			return err
		}
	}

	b, err := bot.New(a.cfg, a.engine, a.renderer, a.logger)
	if err != nil {
		return fmt.Errorf("bot initialization failed: %w", err)
	}

	if a.cfg.CatalogReloadInterval > 0 {
		go func() {
			_ = a.watchCatalog(ctx) //nolint:errcheck // returns only on context cancellation
		}()
	}

	if err := b.Run(ctx); err != nil {
		return fmt.Errorf("bot run: %w", err)
	}

	return nil
}

// RunCheck loads the catalog and logs its statistics.
func (a *App) RunCheck() error {
	if err := a.LoadCatalog(); err != nil {
		return err
	}

	stats := a.engine.Stats()

	buckets := zerolog.Dict()
	for _, key := range catalog.BucketKeys() {
		buckets.Int(key, stats.Buckets[key])
	}

	a.logger.Info().Int(logFieldEntries, stats.Total).Dict(logFieldBuckets, buckets).Msg("Catalog check passed")

	return nil
}

func (a *App) watchCatalog(ctx context.Context) error {
	err := worker.TickerLoop(ctx, worker.TickerConfig{
		Name:     reloadWorkerName,
		Interval: a.cfg.CatalogReloadInterval,
		OnTick: func(context.Context) {
			a.reloadIfChanged()
		},
		Logger: a.logger,
	})
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}

	return nil
}

// reloadIfChanged swaps in a fresh snapshot when the catalog file changed on disk.
// On any failure the current snapshot stays active.
func (a *App) reloadIfChanged() bool {
	state, err := statFile(a.cfg.CatalogPath)
	if err != nil {
		observability.CatalogReloads.WithLabelValues(observability.StatusError).Inc()
		a.logger.Warn().Err(err).Str(logFieldPath, a.cfg.CatalogPath).Msg("cannot stat catalog file, keeping current catalog")

		return false
	}

	if state == a.loaded {
		return false
	}

	res, err := catalog.Load(a.cfg.CatalogPath, a.logger)
	if err != nil {
		observability.CatalogReloads.WithLabelValues(observability.StatusError).Inc()
		a.logger.Error().Err(err).Msg("catalog reload failed, keeping current catalog")

		return false
	}

	a.install(res)
	a.loaded = state

	observability.CatalogReloads.WithLabelValues(observability.StatusOK).Inc()

	return true
}

func statFile(path string) (fileState, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return fileState{modTime: info.ModTime(), size: info.Size()}, nil
}
