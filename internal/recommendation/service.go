// Package recommendation runs the engine for one request and handles
// everything around it: algorithm selection, caching, enrichment, the
// recommendation log, metrics and tracing.
package recommendation

import (
	"context"
	"time"

	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/common/metrics"
	"business-recommender/internal/common/observability"
	"business-recommender/internal/engine"
	"business-recommender/internal/enrichment"
	"business-recommender/internal/models"
	"business-recommender/internal/recordlog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ResponseCache is satisfied by *cache.ResponseCache.
type ResponseCache interface {
	Key(profile models.UserProfile, algorithm models.Algorithm) string
	Get(ctx context.Context, key string) (*models.RecommendationResponse, bool, error)
	Set(ctx context.Context, key string, resp *models.RecommendationResponse) error
}

type Options struct {
	DefaultAlgorithm models.Algorithm
	Timeout          time.Duration
	// Cache, Sink and Observability are optional.
	Cache         ResponseCache
	Sink          recordlog.Sink
	Observability *observability.Observability
}

type Service struct {
	engine   *engine.Engine
	enricher *enrichment.Enricher
	opts     Options
	logger   logger.Logger
}

func NewService(eng *engine.Engine, enricher *enrichment.Enricher, opts Options, log logger.Logger) *Service {
	if opts.DefaultAlgorithm == "" {
		opts.DefaultAlgorithm = models.AlgorithmDefault
	}
	if opts.Sink == nil {
		opts.Sink = recordlog.NopSink{}
	}
	return &Service{
		engine:   eng,
		enricher: enricher,
		opts:     opts,
		logger:   log.WithFields(map[string]interface{}{"component": "recommendation"}),
	}
}

// ResolveAlgorithm maps a request value onto an algorithm; empty means the
// configured default.
func (s *Service) ResolveAlgorithm(raw string) (models.Algorithm, error) {
	if raw == "" {
		return s.opts.DefaultAlgorithm, nil
	}
	alg, ok := models.ParseAlgorithm(raw)
	if !ok {
		return "", apperrors.NewInvalidAlgorithmError(raw)
	}
	return alg, nil
}

func (s *Service) ModelInfo(rawAlgorithm string) (models.ModelInfo, error) {
	alg, err := s.ResolveAlgorithm(rawAlgorithm)
	if err != nil {
		return models.ModelInfo{}, err
	}
	return enrichment.ModelInfoFor(alg), nil
}

// Recommend produces the enriched response for profile. Cache and log
// failures are logged and never fail the request.
func (s *Service) Recommend(ctx context.Context, profile models.UserProfile, rawAlgorithm string) (*models.RecommendationResponse, error) {
	alg, err := s.ResolveAlgorithm(rawAlgorithm)
	if err != nil {
		return nil, err
	}
	if len(profile.NormalizedSkills()) == 0 {
		return nil, apperrors.NewValidationFailedError("profile has no usable skills", []string{"skills: at least one non-empty skill is required"})
	}
	profile.BusinessType = profile.BusinessType.Normalize()

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	log := logger.FromContext(ctx, s.logger)

	var cacheKey string
	if s.opts.Cache != nil {
		cacheKey = s.opts.Cache.Key(profile, alg)
		cached, hit, err := s.opts.Cache.Get(ctx, cacheKey)
		if err != nil {
			log.Warn("cache lookup failed", map[string]interface{}{"error": err})
		}
		if hit {
			cached.RequestID = uuid.NewString()
			log.Debug("served from cache", map[string]interface{}{"requestId": cached.RequestID})
			return cached, nil
		}
	}

	ctx, span := s.startSpan(ctx, "recommendation.recommend",
		attribute.String("algorithm", string(alg)),
		attribute.Int("skills", len(profile.Skills)),
	)
	defer span.End()

	var (
		candidates []models.BusinessTemplate
		strategy   string
		scored     []models.ScoredCandidate
		ranked     []models.ScoredCandidate
	)
	s.stage(ctx, "generate", func() {
		candidates, strategy = s.engine.Generator().GenerateWithStrategy(profile.Skills, profile.BusinessType)
	})
	s.stage(ctx, "score", func() {
		scored = engine.ScoreAll(candidates, profile, alg)
	})
	s.stage(ctx, "rank", func() {
		ranked = engine.Rank(scored)
	})

	var resp models.RecommendationResponse
	s.stage(ctx, "enrich", func() {
		resp = s.enricher.BuildResponse(ranked, profile, alg)
	})
	span.SetAttributes(attribute.String("strategy", strategy), attribute.Int("results", len(ranked)))

	s.recordMetrics(ctx, alg, strategy, resp)

	if s.opts.Cache != nil {
		if err := s.opts.Cache.Set(ctx, cacheKey, &resp); err != nil {
			log.Warn("cache store failed", map[string]interface{}{"error": err})
		}
	}
	if err := s.opts.Sink.Append(ctx, recordlog.NewRecord(profile, strategy, resp)); err != nil {
		log.Warn("recommendation log append failed", map[string]interface{}{
			"requestId": resp.RequestID,
			"error":     err,
		})
	}

	log.Info("recommendations generated", map[string]interface{}{
		"requestId":  resp.RequestID,
		"algorithm":  alg,
		"strategy":   strategy,
		"candidates": len(candidates),
		"results":    len(ranked),
	})
	return &resp, nil
}

func (s *Service) stage(ctx context.Context, name string, fn func()) {
	_, span := s.startSpan(ctx, "recommendation."+name)
	start := time.Now()
	fn()
	span.End()
	if s.opts.Observability != nil {
		s.opts.Observability.RecordStageDuration(ctx, name, time.Since(start))
	}
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if s.opts.Observability == nil {
		return ctx, noop.Span{}
	}
	return s.opts.Observability.StartSpan(ctx, name, attrs...)
}

func (s *Service) recordMetrics(ctx context.Context, alg models.Algorithm, strategy string, resp models.RecommendationResponse) {
	metrics.ObserveRecommendation(string(alg), strategy, confidences(resp))
	if s.opts.Observability != nil {
		s.opts.Observability.RecordRecommendation(ctx, string(alg), strategy, len(resp.Recommendations))
	}
}

func confidences(resp models.RecommendationResponse) []int {
	out := make([]int, len(resp.Recommendations))
	for i, r := range resp.Recommendations {
		out[i] = r.ConfidenceScore
	}
	return out
}
