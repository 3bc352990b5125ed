package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/storm-bulletin-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/storm-bulletin-etl/internal/adapter/kafka"
	"github.com/couchcryptid/storm-bulletin-etl/internal/adapter/mapbox"
	"github.com/couchcryptid/storm-bulletin-etl/internal/config"
	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
	"github.com/couchcryptid/storm-bulletin-etl/internal/filter"
	"github.com/couchcryptid/storm-bulletin-etl/internal/observability"
	"github.com/couchcryptid/storm-bulletin-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	metrics := observability.NewMetrics()

	lists, err := filter.Load(cfg.FiltersFile)
	if err != nil {
		logger.Error("failed to load filters", "error", err)
		os.Exit(1)
	}
	logger.Info("filters loaded", "file", cfg.FiltersFile, "sizes", lists.Summary())

	// Static map rendering is feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN.
	var renderer domain.MapRenderer
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxStyle, cfg.MapboxTimeout, metrics, logger)
		renderer = mapbox.NewCachedRenderer(client, cfg.MapboxCacheSize, metrics)
		metrics.MapRenderEnabled.Set(1)
		logger.Info("mapbox static maps enabled",
			"style", cfg.MapboxStyle,
			"cache_size", cfg.MapboxCacheSize,
			"timeout", cfg.MapboxTimeout,
		)
	} else {
		logger.Info("mapbox static maps disabled")
	}

	processor := domain.NewProcessor(lists, cfg.SourceTag, logger)
	transformer := pipeline.NewTransformer(processor, renderer, metrics, logger)

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, transformer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
