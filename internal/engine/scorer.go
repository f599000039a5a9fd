package engine

import (
	"math"
	"strings"

	"business-recommender/internal/models"
)

// Composite score weights. They sum to 1.0 for a perfect candidate.
const (
	SkillWeight       = 0.6
	TypeWeightExact   = 0.25
	TypeWeightPartial = 0.15
	ExperienceWeight  = 0.1
	LocationWeight    = 0.05
)

const (
	exactMatchScore     = 1.0
	substringMatchScore = 0.9
	semanticCreditFloor = 0.8
	semanticCountFloor  = 0.85

	MinConfidence = 65
	MaxConfidence = 98

	// MLBoost is applied to the ranking score when the ml hint is requested.
	MLBoost = 1.1
)

var experienceFactors = map[models.ExperienceLevel]float64{
	models.ExperienceNone:         0.6,
	models.ExperienceBeginner:     0.75,
	models.ExperienceIntermediate: 0.9,
	models.ExperienceExpert:       1.0,
}

var locationFactors = map[models.LocationType]float64{
	models.LocationUrban:     1.0,
	models.LocationSemiUrban: 0.9,
	models.LocationRural:     0.8,
}

const (
	defaultExperienceFactor = 0.75
	defaultLocationFactor   = 0.9
)

// Score computes the composite, ranking and confidence scores of one candidate.
func Score(candidate models.BusinessTemplate, profile models.UserProfile, algorithm models.Algorithm) models.ScoredCandidate {
	skill, exact, semantic := skillMatch(profile.NormalizedSkills(), candidate.SkillKeywords)

	base := skill*SkillWeight +
		typeFit(candidate.Type, profile.BusinessType) +
		ExperienceFactor(profile.Experience)*ExperienceWeight +
		LocationFactor(profile.Location)*LocationWeight

	return models.ScoredCandidate{
		BusinessTemplate:   candidate,
		RawScore:           applyAlgorithm(base, algorithm),
		BaseScore:          base,
		SkillScore:         skill,
		ExactMatchCount:    exact,
		SemanticMatchCount: semantic,
		ConfidenceScore:    confidence(base, exact, semantic),
	}
}

// ScoreAll scores every candidate in generation order.
func ScoreAll(candidates []models.BusinessTemplate, profile models.UserProfile, algorithm models.Algorithm) []models.ScoredCandidate {
	out := make([]models.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Score(c, profile, algorithm))
	}
	return out
}

// skillMatch sums each skill's best keyword match and normalizes by the
// number of skills. Match counters are per (skill, keyword) pair.
func skillMatch(skills, keywords []string) (score float64, exact, semantic int) {
	if len(skills) == 0 {
		return 0, 0, 0
	}

	normalizedKeywords := make([]string, len(keywords))
	for i, k := range keywords {
		normalizedKeywords[i] = models.NormalizeSkill(k)
	}

	var total float64
	for _, skill := range skills {
		best := 0.0
		for _, kw := range normalizedKeywords {
			q, isExact, isSemantic := matchQuality(skill, kw)
			if isExact {
				exact++
			}
			if isSemantic {
				semantic++
			}
			if q > best {
				best = q
			}
		}
		total += best
	}

	return math.Min(total/float64(len(skills)), 1.0), exact, semantic
}

func matchQuality(skill, keyword string) (q float64, exact, semantic bool) {
	if skill == "" || keyword == "" {
		return 0, false, false
	}
	if skill == keyword {
		return exactMatchScore, true, false
	}
	if strings.Contains(skill, keyword) || strings.Contains(keyword, skill) {
		return substringMatchScore, false, false
	}
	if sim := Similarity(skill, keyword); sim > semanticCreditFloor {
		return sim, false, sim > semanticCountFloor
	}
	return 0, false, false
}

func typeFit(candidate, requested models.BusinessType) float64 {
	candidate, requested = candidate.Normalize(), requested.Normalize()
	switch {
	case candidate == requested:
		return TypeWeightExact
	case requested == models.BusinessTypeBoth, candidate == models.BusinessTypeBoth:
		return TypeWeightPartial
	default:
		return 0
	}
}

// ExperienceFactor maps an experience level to its weight; unknown levels count as beginner.
func ExperienceFactor(level models.ExperienceLevel) float64 {
	if f, ok := experienceFactors[level]; ok {
		return f
	}
	return defaultExperienceFactor
}

// LocationFactor maps a location to its weight; unknown locations count as semi-urban.
func LocationFactor(loc models.LocationType) float64 {
	if f, ok := locationFactors[loc]; ok {
		return f
	}
	return defaultLocationFactor
}

func confidence(base float64, exact, semantic int) int {
	c := int(math.Round(base * 100))
	switch {
	case exact >= 2:
		c += 15
	case exact >= 1:
		c += 10
	}
	if semantic >= 2 {
		c += 8
	}

	if c < MinConfidence {
		return MinConfidence
	}
	if c > MaxConfidence {
		return MaxConfidence
	}
	return c
}

func applyAlgorithm(score float64, algorithm models.Algorithm) float64 {
	if algorithm == models.AlgorithmML {
		return score * MLBoost
	}
	return score
}
