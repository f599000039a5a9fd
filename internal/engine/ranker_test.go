package engine

import (
	"testing"

	"business-recommender/internal/models"

	"github.com/stretchr/testify/assert"
)

func scored(id string, raw, skill float64) models.ScoredCandidate {
	return models.ScoredCandidate{
		BusinessTemplate: models.BusinessTemplate{ID: id, Name: id},
		RawScore:         raw,
		SkillScore:       skill,
	}
}

func rankedIDs(in []models.ScoredCandidate) []string {
	ids := make([]string, 0, len(in))
	for _, c := range in {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestRank(t *testing.T) {
	tests := []struct {
		name     string
		input    []models.ScoredCandidate
		expected []string
	}{
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "drops weak skill matches",
			input:    []models.ScoredCandidate{scored("a", 0.9, 0.2), scored("b", 0.5, 0.25)},
			expected: []string{"b"},
		},
		{
			name:     "orders by ranking score",
			input:    []models.ScoredCandidate{scored("a", 0.4, 1), scored("b", 0.8, 1), scored("c", 0.6, 1)},
			expected: []string{"b", "c", "a"},
		},
		{
			name: "keeps the top three",
			input: []models.ScoredCandidate{
				scored("a", 0.1, 1), scored("b", 0.2, 1), scored("c", 0.3, 1), scored("d", 0.4, 1), scored("e", 0.5, 1),
			},
			expected: []string{"e", "d", "c"},
		},
		{
			name:     "ties keep generation order",
			input:    []models.ScoredCandidate{scored("a", 0.7, 0.5), scored("b", 0.7, 0.5), scored("c", 0.9, 0.5)},
			expected: []string{"c", "a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rankedIDs(Rank(tt.input)))
		})
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	input := []models.ScoredCandidate{scored("a", 0.1, 1), scored("b", 0.9, 1)}

	_ = Rank(input)

	assert.Equal(t, []string{"a", "b"}, rankedIDs(input))
}
