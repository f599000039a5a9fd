// internal/workers/recommendation/calculate-match-score/handler.go
package calculatematchscore

import (
	"context"

	"business-recommender/internal/common/camunda"
	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/engine"
	"business-recommender/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "calculate-match-score"
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		logger:       l,
		errorHandler: apperrors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := camunda.ParseVariables(job, &input); err != nil {
		camunda.FailJob(ctx, client, job, err, h.errorHandler)
		return
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		camunda.FailJob(ctx, client, job, err, h.errorHandler)
		return
	}

	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute scores every candidate against the profile. Candidates keep their
// generation order; ordering is left to the ranking step.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, apperrors.NewValidationFailedError("input cannot be nil", nil)
	}

	alg := h.config.DefaultAlgorithm
	if input.Algorithm != "" {
		parsed, ok := models.ParseAlgorithm(input.Algorithm)
		if !ok {
			return nil, apperrors.NewInvalidAlgorithmError(input.Algorithm)
		}
		alg = parsed
	}

	return &Output{
		ScoredCandidates: engine.ScoreAll(input.Candidates, input.Profile, alg),
		Algorithm:        alg,
	}, nil
}
