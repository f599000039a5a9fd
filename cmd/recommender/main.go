// cmd/recommender/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"business-recommender/internal/api"
	"business-recommender/internal/cache"
	"business-recommender/internal/common/config"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/common/observability"
	"business-recommender/internal/engine"
	"business-recommender/internal/enrichment"
	"business-recommender/internal/models"
	"business-recommender/internal/recommendation"
)

func main() {
	bootLog := logger.New("info", "console")
	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format).With(zap.String("service", cfg.App.Name))
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)
	if err := run(cfg, log); err != nil {
		zapLog.Fatal("recommender stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting recommender", map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	obs, err := observability.New(observability.Options{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.App.Version,
		TracingEnabled: cfg.Observability.Tracing.Enabled,
		JaegerEndpoint: cfg.Observability.Tracing.JaegerEndpoint,
		SampleRatio:    cfg.Observability.Tracing.SampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			log.Error("observability shutdown failed", map[string]interface{}{"error": err})
		}
	}()

	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.Close(log)

	sink, err := buildSink(ctx, cfg, b, log)
	if err != nil {
		return err
	}

	defaultAlg, _ := models.ParseAlgorithm(cfg.Recommendation.DefaultAlgorithm)
	opts := recommendation.Options{
		DefaultAlgorithm: defaultAlg,
		Timeout:          config.GetDuration(cfg.Recommendation.RequestTimeout),
		Sink:             sink,
		Observability:    obs,
	}
	if cfg.Recommendation.CacheEnabled {
		opts.Cache = cache.NewResponseCache(
			b.redis.Client,
			cfg.Recommendation.CachePrefix,
			time.Duration(cfg.Recommendation.CacheTTL)*time.Second,
		)
	}

	eng := engine.New()
	enricher := enrichment.NewEnricher()
	recommender := recommendation.NewService(eng, enricher, opts, log)

	contacter, err := buildContacter(ctx, cfg, log)
	if err != nil {
		return err
	}

	workers, err := startWorkers(ctx, cfg, workerDeps{
		engine:    eng,
		enricher:  enricher,
		sink:      sink,
		contacter: contacter,
	}, log)
	if err != nil {
		return err
	}
	defer workers.Close(log)

	checks := b.checks()
	if workers.client != nil {
		checks["zeebe"] = workers.client
	}

	deps := api.Dependencies{
		Recommender: recommender,
		Checks:      checks,
		Logger:      log,
	}
	// Contacter stays a nil interface when no channel is enabled.
	if contacter != nil {
		deps.Contacter = contacter
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      api.NewRouter(cfg.Server, deps).Setup(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", map[string]interface{}{"address": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received", nil)
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", map[string]interface{}{"error": err})
	}

	log.Info("recommender stopped", nil)
	return nil
}
