// Package recordlog is the append-only log of served recommendations.
// Nothing in the recommendation pipeline reads it back.
package recordlog

import (
	"context"
	"errors"
	"time"

	"business-recommender/internal/common/metrics"
	"business-recommender/internal/models"

	"github.com/google/uuid"
)

// Record is one served recommendation.
type Record struct {
	ID          string             `json:"id"`
	RequestID   string             `json:"requestId"`
	Algorithm   models.Algorithm   `json:"algorithm"`
	Strategy    string             `json:"strategy"`
	Profile     models.UserProfile `json:"profile"`
	TemplateIDs []string           `json:"templateIds"`
	TopScore    float64            `json:"topScore"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// NewRecord summarises resp for the log.
func NewRecord(profile models.UserProfile, strategy string, resp models.RecommendationResponse) Record {
	rec := Record{
		ID:          uuid.NewString(),
		RequestID:   resp.RequestID,
		Algorithm:   resp.Algorithm,
		Strategy:    strategy,
		Profile:     profile,
		TemplateIDs: make([]string, 0, len(resp.Recommendations)),
		CreatedAt:   time.Now().UTC(),
	}
	for i, r := range resp.Recommendations {
		if i == 0 {
			rec.TopScore = r.RawScore
		}
		rec.TemplateIDs = append(rec.TemplateIDs, r.ID)
	}
	return rec
}

type Sink interface {
	Name() string
	Append(ctx context.Context, rec Record) error
}

// MultiSink appends to every sink and joins their errors.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Name() string { return "multi" }

func (m *MultiSink) Append(ctx context.Context, rec Record) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Append(ctx, rec); err != nil {
			metrics.LogSinkErrors.WithLabelValues(s.Name()).Inc()
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) Len() int { return len(m.sinks) }

type NopSink struct{}

func (NopSink) Name() string { return "nop" }
func (NopSink) Append(context.Context, Record) error { return nil }
