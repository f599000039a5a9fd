// internal/workers/recommendation/apply-relevance-ranking/handler.go
package applyrelevanceranking

import (
	"context"

	"business-recommender/internal/common/camunda"
	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/engine"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "apply-relevance-ranking"
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

// Execute filters weak skill matches and keeps the top results. An empty
// ranking is a valid outcome, not an error.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, apperrors.NewValidationFailedError("input cannot be nil", nil)
	}

	ranked := engine.Rank(input.ScoredCandidates)

	below := 0
	for _, c := range input.ScoredCandidates {
		if c.SkillScore < engine.MinSkillScore {
			below++
		}
	}
	if len(ranked) == 0 {
		h.logger.Info("no candidate passed the skill threshold", map[string]interface{}{
			"scored": len(input.ScoredCandidates),
		})
	}

	return &Output{
		RankedCandidates: ranked,
		RankedCount:      len(ranked),
		FilteredCount:    below,
	}, nil
}
