// cmd/recommender/backends.go
package main

import (
	"context"
	"fmt"

	"business-recommender/internal/common/aws"
	"business-recommender/internal/common/camunda"
	"business-recommender/internal/common/config"
	"business-recommender/internal/common/database"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/mentorcontact"
	"business-recommender/internal/recordlog"
)

// backends holds the optional storage clients. A nil field means the backend
// is not used by the current configuration.
type backends struct {
	postgres      *database.PostgresClient
	redis         *database.RedisClient
	elasticsearch *database.ElasticsearchClient
}

func needsRedis(cfg *config.Config) bool {
	return cfg.Recommendation.CacheEnabled || cfg.Recommendation.HasSink(config.SinkRedis)
}

func openBackends(ctx context.Context, cfg *config.Config, log logger.Logger) (*backends, error) {
	b := &backends{}
	retry := camunda.DefaultRetryConfig

	if cfg.Recommendation.HasSink(config.SinkPostgres) {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		if err := camunda.RetryWithBackoff(ctx, retry, log, "postgres connection", pg.Ping); err != nil {
			pg.Close()
			return nil, err
		}
		b.postgres = pg
		log.Info("postgres connected", nil)
	}

	if needsRedis(cfg) {
		rdb := database.NewRedis(cfg.Database.Redis)
		if err := camunda.RetryWithBackoff(ctx, retry, log, "redis connection", rdb.Ping); err != nil {
			rdb.Close()
			b.Close(log)
			return nil, err
		}
		b.redis = rdb
		log.Info("redis connected", nil)
	}

	if cfg.Recommendation.HasSink(config.SinkElasticsearch) {
		es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			b.Close(log)
			return nil, err
		}
		if err := camunda.RetryWithBackoff(ctx, retry, log, "elasticsearch connection", es.Ping); err != nil {
			b.Close(log)
			return nil, err
		}
		b.elasticsearch = es
		log.Info("elasticsearch connected", nil)
	}

	return b, nil
}

func (b *backends) checks() map[string]database.Pinger {
	checks := map[string]database.Pinger{}
	if b.postgres != nil {
		checks["postgres"] = b.postgres
	}
	if b.redis != nil {
		checks["redis"] = b.redis
	}
	if b.elasticsearch != nil {
		checks["elasticsearch"] = b.elasticsearch
	}
	return checks
}

func (b *backends) Close(log logger.Logger) {
	if b.postgres != nil {
		if err := b.postgres.Close(); err != nil {
			log.Error("failed to close postgres", map[string]interface{}{"error": err})
		}
	}
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			log.Error("failed to close redis", map[string]interface{}{"error": err})
		}
	}
}

// buildSink prepares the storage for every configured log sink and fans out
// to all of them.
func buildSink(ctx context.Context, cfg *config.Config, b *backends, log logger.Logger) (recordlog.Sink, error) {
	rc := cfg.Recommendation
	var sinks []recordlog.Sink

	if b.postgres != nil {
		if err := b.postgres.Migrate(ctx, recordlog.MigrationStatements(rc.LogTable)...); err != nil {
			return nil, fmt.Errorf("migrate recommendation log: %w", err)
		}
		sinks = append(sinks, recordlog.NewPostgresSink(b.postgres.DB, rc.LogTable))
	}
	if b.redis != nil && rc.HasSink(config.SinkRedis) {
		sinks = append(sinks, recordlog.NewRedisSink(b.redis.Client, rc.LogStream, rc.LogStreamMaxLen))
	}
	if b.elasticsearch != nil {
		if err := b.elasticsearch.EnsureIndex(ctx, rc.LogIndex, recordlog.IndexMapping); err != nil {
			return nil, fmt.Errorf("create recommendation index: %w", err)
		}
		sinks = append(sinks, recordlog.NewElasticsearchSink(b.elasticsearch.Client, rc.LogIndex))
	}

	if len(sinks) == 0 {
		log.Info("recommendation log disabled", nil)
		return recordlog.NopSink{}, nil
	}
	log.Info("recommendation log enabled", map[string]interface{}{"sinks": rc.LogSinks})
	return recordlog.NewMultiSink(sinks...), nil
}

// buildContacter returns nil when neither delivery channel is enabled; the
// contact route is then not mounted.
func buildContacter(ctx context.Context, cfg *config.Config, log logger.Logger) (*mentorcontact.Service, error) {
	n := cfg.Notifications
	if !n.Email.Enabled && !n.SMS.Enabled {
		return nil, nil
	}

	clients, err := aws.NewClients(ctx, n.AWS.Region)
	if err != nil {
		return nil, err
	}

	return mentorcontact.NewService(mentorcontact.Config{
		EmailEnabled: n.Email.Enabled,
		FromEmail:    n.Email.FromEmail,
		SMSEnabled:   n.SMS.Enabled,
		SenderID:     n.SMS.SenderID,
	}, clients.SES, clients.SNS, log), nil
}
