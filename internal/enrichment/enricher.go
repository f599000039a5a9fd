// Package enrichment attaches the static learning material, mentors and
// estimates to ranked candidates. Every table here is read-only.
package enrichment

import (
	"time"

	"business-recommender/internal/models"

	"github.com/google/uuid"
)

type Enricher struct {
	now   func() time.Time
	newID func() string
}

func NewEnricher() *Enricher {
	return &Enricher{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Enrich attaches the catalogs to one ranked candidate.
func (e *Enricher) Enrich(c models.ScoredCandidate, profile models.UserProfile) models.Recommendation {
	return models.Recommendation{
		ScoredCandidate: c,
		Resources:       ResourcesFor(c.ID),
		Mentors:         MentorsFor(c.Type),
		CaseStudies:     CaseStudiesFor(c.Name),
		Guidance:        GuidanceFor(c.BusinessTemplate, profile),
		Financials:      Financials(),
		WorkforcePlan:   WorkforcePlan(),
		DataSources:     DataSources(),
	}
}

// BuildResponse enriches ranked in order and wraps it with request metadata.
func (e *Enricher) BuildResponse(ranked []models.ScoredCandidate, profile models.UserProfile, algorithm models.Algorithm) models.RecommendationResponse {
	recs := make([]models.Recommendation, 0, len(ranked))
	for _, c := range ranked {
		recs = append(recs, e.Enrich(c, profile))
	}
	return models.RecommendationResponse{
		RequestID:       e.newID(),
		GeneratedAt:     e.now().UTC().Format(time.RFC3339),
		Algorithm:       algorithm,
		Recommendations: recs,
		ModelInfo:       ModelInfoFor(algorithm),
	}
}
