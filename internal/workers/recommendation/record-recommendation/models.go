// internal/workers/recommendation/record-recommendation/models.go
package recordrecommendation

import "business-recommender/internal/models"

type Input struct {
	Profile  models.UserProfile            `json:"profile"`
	Response models.RecommendationResponse `json:"response"`
	Strategy string                        `json:"strategy"`
}

type Output struct {
	RecordID string `json:"recordId"`
	Sink     string `json:"recordSink"`
}
