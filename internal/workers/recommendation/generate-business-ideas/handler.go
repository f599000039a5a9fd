// internal/workers/recommendation/generate-business-ideas/handler.go
package generatebusinessideas

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
	TaskType = "generate-business-ideas"
)

type Handler struct {
	config       *Config
	generator    *engine.Generator
	logger       logger.Logger
	errorHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, generator *engine.Generator, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		generator:    generator,
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

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input == nil || len(input.Profile.NormalizedSkills()) == 0 {
		return nil, apperrors.NewValidationFailedError("profile has no skills", []string{"skills: is required"})
	}

	candidates, strategy := h.generator.GenerateWithStrategy(input.Profile.Skills, input.Profile.BusinessType)

	h.logger.Debug("candidates generated", map[string]interface{}{
		"strategy":   strategy,
		"candidates": len(candidates),
	})

	return &Output{
		Candidates:     candidates,
		Strategy:       strategy,
		CandidateCount: len(candidates),
	}, nil
}
