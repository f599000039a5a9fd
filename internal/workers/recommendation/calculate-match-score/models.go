// internal/workers/recommendation/calculate-match-score/models.go
package calculatematchscore

import "business-recommender/internal/models"

type Input struct {
	Profile    models.UserProfile        `json:"profile"`
	Candidates []models.BusinessTemplate `json:"candidates"`
	Algorithm  string                    `json:"algorithm"`
}

type Output struct {
	ScoredCandidates []models.ScoredCandidate `json:"scoredCandidates"`
	Algorithm        models.Algorithm         `json:"algorithm"`
}
