package api

import (
	"net/http"
	"strconv"
	"time"

	"business-recommender/internal/common/config"
	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/common/metrics"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func corsMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         cfg.MaxAge,
	})
}

// rateLimitMiddleware limits requests per client IP. Disabled limits are a no-op.
func rateLimitMiddleware(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.Requests,
		time.Duration(cfg.Window)*time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: &apperrors.StandardError{
				Code:    "RATE_LIMITED",
				Message: "Too many requests",
			}})
		}),
	)
}

// requestLogger scopes a logger to the request, logs the outcome and
// records the request duration by route pattern.
func requestLogger(base logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLog := base.WithFields(map[string]interface{}{
				"requestId": chimiddleware.GetReqID(r.Context()),
			})
			next.ServeHTTP(ww, r.WithContext(logger.IntoContext(r.Context(), reqLog)))

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			elapsed := time.Since(start)
			metrics.HTTPRequestDuration.
				WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).
				Observe(elapsed.Seconds())

			reqLog.Info("http request", map[string]interface{}{
				"method":     r.Method,
				"route":      route,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"durationMs": elapsed.Milliseconds(),
				"remoteAddr": r.RemoteAddr,
			})
		})
	}
}
