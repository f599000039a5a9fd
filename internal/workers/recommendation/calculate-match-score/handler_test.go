// internal/workers/recommendation/calculate-match-score/handler_test.go
package calculatematchscore

import (
	"context"
	"testing"
	"time"

	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/engine"
	"business-recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		DefaultAlgorithm: models.AlgorithmDefault,
		Timeout:          3 * time.Second,
	}
}

func createTestInput(t *testing.T) *Input {
	tailoring, ok := engine.LookupTemplate("sewing")
	require.True(t, ok)
	bakery, ok := engine.LookupTemplate("baking")
	require.True(t, ok)

	return &Input{
		Profile: models.UserProfile{
			Skills:     []string{"sewing"},
			Experience: models.ExperienceExpert,
			Location:   models.LocationUrban,
		},
		Candidates: []models.BusinessTemplate{bakery, tailoring},
	}
}

// ==========================
// Execute
// ==========================

func TestHandler_Execute_ScoresInGenerationOrder(t *testing.T) {
	h := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	input := createTestInput(t)

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, output.ScoredCandidates, 2)

	assert.Equal(t, "baking", output.ScoredCandidates[0].ID)
	assert.Equal(t, "sewing", output.ScoredCandidates[1].ID)
	assert.Greater(t, output.ScoredCandidates[1].RawScore, output.ScoredCandidates[0].RawScore)
	assert.Equal(t, 1, output.ScoredCandidates[1].ExactMatchCount)
	assert.Equal(t, models.AlgorithmDefault, output.Algorithm)

	assert.Equal(t, engine.ScoreAll(input.Candidates, input.Profile, models.AlgorithmDefault), output.ScoredCandidates)
}

func TestHandler_Execute_MLBoost(t *testing.T) {
	h := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	plain, err := h.Execute(context.Background(), createTestInput(t))
	require.NoError(t, err)

	input := createTestInput(t)
	input.Algorithm = "ml"
	boosted, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, models.AlgorithmML, boosted.Algorithm)
	for i := range plain.ScoredCandidates {
		assert.InDelta(t, plain.ScoredCandidates[i].RawScore*engine.MLBoost, boosted.ScoredCandidates[i].RawScore, 1e-9)
		assert.Equal(t, plain.ScoredCandidates[i].ConfidenceScore, boosted.ScoredCandidates[i].ConfidenceScore)
	}
}

func TestHandler_Execute_EmptyCandidates(t *testing.T) {
	h := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Profile: models.UserProfile{Skills: []string{"x"}}})
	require.NoError(t, err)
	assert.NotNil(t, output.ScoredCandidates)
	assert.Empty(t, output.ScoredCandidates)
}

func TestHandler_Execute_Errors(t *testing.T) {
	h := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	_, err := h.Execute(context.Background(), nil)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.AsStandardError(err).Code)

	input := createTestInput(t)
	input.Algorithm = "svm"
	_, err = h.Execute(context.Background(), input)
	assert.Equal(t, apperrors.ErrCodeInvalidAlgorithm, apperrors.AsStandardError(err).Code)
}
