// Package engine turns a user profile into ranked small-business candidates.
//
// The pipeline is generate, score, rank. It is pure: the similarity table and
// template catalog are read-only package data and nothing is written while a
// profile is evaluated, so an Engine may be shared across goroutines.
package engine

import "business-recommender/internal/models"

type Engine struct {
	generator *Generator
}

func New(strategies ...GenerationStrategy) *Engine {
	return &Engine{generator: NewGenerator(strategies...)}
}

// Result carries the ranked output together with the intermediate stages.
type Result struct {
	Strategy   string
	Candidates []models.BusinessTemplate
	Scored     []models.ScoredCandidate
	Ranked     []models.ScoredCandidate
}

// Recommend returns at most MaxResults ranked candidates for the profile.
func (e *Engine) Recommend(profile models.UserProfile, algorithm models.Algorithm) []models.ScoredCandidate {
	return e.Evaluate(profile, algorithm).Ranked
}

// Evaluate runs the full pipeline and keeps every stage's output.
func (e *Engine) Evaluate(profile models.UserProfile, algorithm models.Algorithm) Result {
	candidates, strategy := e.generator.GenerateWithStrategy(profile.Skills, profile.BusinessType)
	scored := ScoreAll(candidates, profile, algorithm)
	return Result{
		Strategy:   strategy,
		Candidates: candidates,
		Scored:     scored,
		Ranked:     Rank(scored),
	}
}

func (e *Engine) Generator() *Generator {
	return e.generator
}
