// internal/workers/recommendation/generate-business-ideas/models.go
package generatebusinessideas

import "business-recommender/internal/models"

type Input struct {
	Profile models.UserProfile `json:"profile"`
}

type Output struct {
	Candidates     []models.BusinessTemplate `json:"candidates"`
	Strategy       string                    `json:"strategy"`
	CandidateCount int                       `json:"candidateCount"`
}
