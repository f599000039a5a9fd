// internal/models/recommendation.go
package models

import "strings"

// Algorithm is the hint selecting how the ranking score is post-processed.
type Algorithm string

const (
	AlgorithmDefault Algorithm = "default"
	AlgorithmML      Algorithm = "ml"
)

// ParseAlgorithm returns the algorithm for s and whether s named a known one.
// An empty string is the default algorithm.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", AlgorithmDefault:
		return AlgorithmDefault, true
	case AlgorithmML:
		return AlgorithmML, true
	default:
		return AlgorithmDefault, false
	}
}

type ModelInfo struct {
	Model        string   `json:"model"`
	Features     []string `json:"features"`
	TrainingData string   `json:"trainingData"`
	Accuracy     string   `json:"accuracy"`
}

// Recommendation is one ranked candidate with its enrichment attached.
type Recommendation struct {
	ScoredCandidate
	Resources     []Resource    `json:"resources"`
	Mentors       []Mentor      `json:"mentors"`
	CaseStudies   []CaseStudy   `json:"caseStudies"`
	Guidance      Guidance      `json:"guidance"`
	Financials    FinancialPlan `json:"financials"`
	WorkforcePlan WorkforcePlan `json:"workforcePlan"`
	DataSources   []DataSource  `json:"dataSources"`
}

type RecommendationResponse struct {
	RequestID       string           `json:"requestId"`
	GeneratedAt     string           `json:"generatedAt"`
	Algorithm       Algorithm        `json:"algorithm"`
	Recommendations []Recommendation `json:"recommendations"`
	ModelInfo       ModelInfo        `json:"modelInfo"`
}
