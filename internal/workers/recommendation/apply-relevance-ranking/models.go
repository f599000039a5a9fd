// internal/workers/recommendation/apply-relevance-ranking/models.go
package applyrelevanceranking

import "business-recommender/internal/models"

type Input struct {
	ScoredCandidates []models.ScoredCandidate `json:"scoredCandidates"`
}

type Output struct {
	RankedCandidates []models.ScoredCandidate `json:"rankedCandidates"`
	RankedCount      int                      `json:"rankedCount"`
	FilteredCount    int                      `json:"filteredCount"`
}
