package engine

import (
	"sort"

	"business-recommender/internal/models"
)

const (
	MinSkillScore = 0.25
	MaxResults    = 3
)

// Rank drops weak skill matches, orders by ranking score and keeps the top
// MaxResults. Equal scores keep generation order. The input is not modified.
func Rank(candidates []models.ScoredCandidate) []models.ScoredCandidate {
	kept := make([]models.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.SkillScore >= MinSkillScore {
			kept = append(kept, c)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].RawScore > kept[j].RawScore
	})

	if len(kept) > MaxResults {
		kept = kept[:MaxResults]
	}
	return kept
}
