// internal/workers/recommendation/build-response/models.go
package buildresponse

import "business-recommender/internal/models"

type Input struct {
	Profile          models.UserProfile       `json:"profile"`
	RankedCandidates []models.ScoredCandidate `json:"rankedCandidates"`
	Algorithm        string                   `json:"algorithm"`
	Strategy         string                   `json:"strategy"`
}

type Output struct {
	Response models.RecommendationResponse `json:"response"`
}
