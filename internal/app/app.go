package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"streaming-analytics/internal/aggregators"
	"streaming-analytics/internal/generators"
	internalhttp "streaming-analytics/internal/http"
	"streaming-analytics/internal/ingestors"
	"streaming-analytics/internal/models"
	"streaming-analytics/internal/shared/configs"
	"streaming-analytics/internal/shared/loggers"
	"streaming-analytics/internal/stores"
	"streaming-analytics/internal/streams"
)

const pruneInterval = 10 * time.Minute

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	db            *sql.DB
	eventLog      stores.EventLogStore
	snapshotStore stores.SnapshotStore
	aggregator    *aggregators.WindowAggregator
	eventConsumer streams.EventConsumer

	// generator pipeline, nil when generator.enabled is false
	eventBuffer     *streams.EventBuffer
	generatorRunner *generators.Runner
	pipelineRunner  *streams.PipelineRunner

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// pipelineProbe reports generator backpressure to the ingestion health
// snapshot. The buffer is the single drop point, so its counter is the
// authoritative dropped-event count.
type pipelineProbe struct {
	buffer *streams.EventBuffer
}

func (p *pipelineProbe) PendingEvents() int {
	return p.buffer.Len()
}

func (p *pipelineProbe) DroppedEvents() int64 {
	return p.buffer.DroppedEvents()
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "streaming-analytics").
		Logger()

	// Initialize event log storage
	db, err := stores.OpenDatabase(config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	eventLog := stores.NewEventLogStore(db)
	snapshotStore := stores.NewSnapshotStore(db)

	// Initialize aggregation
	windows := make([]models.WindowSize, 0, len(config.Aggregation.Windows))
	for _, name := range config.Aggregation.Windows {
		window, err := models.NewWindowSizeFromString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize window size: %w", err)
		}
		windows = append(windows, window)
	}
	granularity := time.Duration(config.Aggregation.BucketGranularitySeconds) * time.Second
	aggregatorLogger := appLogger.With().Str(loggers.FieldComponent, "aggregator").Logger()
	aggregator := aggregators.NewWindowAggregator(granularity, windows, aggregatorLogger)

	if err := restoreAggregateState(context.Background(), aggregator, snapshotStore, eventLog, appLogger); err != nil {
		return nil, fmt.Errorf("failed to restore aggregate state: %w", err)
	}

	// Initialize stream queue and consumer
	eventQueue := streams.NewPartitionedQueue[*models.Event]()
	eventProducer := streams.NewEventProducer(eventQueue)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	eventConsumer := streams.NewEventConsumer(eventQueue, aggregator, consumerLogger)

	// Initialize generator pipeline
	var (
		eventBuffer     *streams.EventBuffer
		generatorRunner *generators.Runner
		probe           ingestors.PipelineProbe
	)
	if config.Generator.Enabled {
		eventBuffer = streams.NewEventBuffer(config.Generator.BufferSize)
		generator, err := generators.NewGenerator(config.Generator)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize generator: %w", err)
		}
		generatorRunner = generators.NewRunner(generator, eventBuffer)
		probe = &pipelineProbe{buffer: eventBuffer}
	}

	// Initialize ingestionService
	ingestionService := ingestors.NewIngestionService(config.Ingestion, eventLog, eventProducer, probe)

	var pipelineRunner *streams.PipelineRunner
	if config.Generator.Enabled {
		pipelineLogger := appLogger.With().Str(loggers.FieldComponent, "pipeline").Logger()
		pipelineRunner = streams.NewPipelineRunner(eventBuffer, ingestionService, pipelineLogger)
	}

	// Initialize analytics read API
	analyticsService := aggregators.NewAnalyticsService(aggregator, eventLog)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, analyticsService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		server:          server,
		db:              db,
		eventLog:        eventLog,
		snapshotStore:   snapshotStore,
		aggregator:      aggregator,
		eventConsumer:   eventConsumer,
		eventBuffer:     eventBuffer,
		generatorRunner: generatorRunner,
		pipelineRunner:  pipelineRunner,
	}, nil
}

// restoreAggregateState warms the aggregator from the last saved snapshots,
// then replays whatever the log received after they were taken. With no
// snapshots it rebuilds from the log alone.
func restoreAggregateState(
	ctx context.Context,
	aggregator *aggregators.WindowAggregator,
	snapshotStore stores.SnapshotStore,
	eventLog stores.EventLogStore,
	appLogger loggers.Logger,
) error {
	snapshots, err := snapshotStore.Load(ctx)
	if err != nil {
		return err
	}

	if len(snapshots) == 0 {
		appLogger.Info().Msg("No bucket snapshots found, rebuilding aggregate state from event log")
		return aggregator.Rebuild(ctx, eventLog)
	}

	aggregator.RestoreSnapshots(snapshots)
	appLogger.Info().
		Int("buckets", aggregator.BucketCount()).
		Int64("max_offset", aggregator.MaxOffset()).
		Msg("Restored aggregate state from snapshots, replaying tail of event log")
	return aggregator.ReplayFrom(ctx, eventLog, aggregator.MaxOffset())
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting streaming-analytics service on port %d (log_level=%s, storage_path=%s, generator_enabled=%t)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.Path,
			app.config.Generator.Enabled)

	// start background pipeline
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.eventConsumer.Start(app.backgroundCtx)
	if app.pipelineRunner != nil {
		app.pipelineRunner.Start(app.backgroundCtx)
	}
	if app.generatorRunner != nil {
		app.generatorRunner.Start(app.backgroundCtx)
	}
	go app.runRetentionLoop(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// runRetentionLoop periodically prunes log entries older than the configured
// retention horizon.
func (app *App) runRetentionLoop(ctx context.Context) {
	retention := time.Duration(app.config.Storage.RetentionHours) * time.Hour
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			horizon := time.Now().Add(-retention)
			pruned, err := app.eventLog.PruneBefore(ctx, horizon)
			if err != nil {
				app.appLogger.Error().Err(err).Msg("Failed to prune event log")
				continue
			}
			if pruned > 0 {
				app.appLogger.Info().Int64("pruned_events", pruned).Msg("Pruned event log")
			}
		}
	}
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server, no new batches arrive after this
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop producing, then drain the pipeline front to back
	if app.generatorRunner != nil {
		app.generatorRunner.Stop()
	}
	if app.pipelineRunner != nil {
		app.pipelineRunner.Stop()
	}
	app.eventConsumer.Stop()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Background pipeline stopped")

	// 3) Persist aggregate state for a warm restart
	if err := app.snapshotStore.Save(ctx, app.aggregator.ExportSnapshots()); err != nil {
		app.appLogger.Error().Err(err).Msg("Failed to save bucket snapshots")
	} else {
		app.appLogger.Info().Int("buckets", app.aggregator.BucketCount()).Msg("Saved bucket snapshots")
	}

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}

	return nil
}
