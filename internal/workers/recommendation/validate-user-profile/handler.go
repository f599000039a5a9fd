// internal/workers/recommendation/validate-user-profile/handler.go
package validateuserprofile

import (
	"context"

	"business-recommender/internal/common/camunda"
	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/common/validation"
	"business-recommender/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-user-profile"
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

// Execute checks the raw profile against the profile schema and resolves the
// algorithm hint. Any failure ends the process with PROFILE_INVALID.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input == nil || input.Profile == nil {
		return nil, apperrors.NewValidationFailedError("profile is required", []string{"profile: is required"})
	}

	profile, err := validation.DecodeProfile(input.Profile)
	if err != nil {
		return nil, err
	}
	if len(profile.NormalizedSkills()) == 0 {
		return nil, apperrors.NewValidationFailedError("at least one skill is required", []string{"skills: no usable skill"})
	}

	alg := h.config.DefaultAlgorithm
	if input.Algorithm != "" {
		parsed, ok := models.ParseAlgorithm(input.Algorithm)
		if !ok {
			return nil, apperrors.NewInvalidAlgorithmError(input.Algorithm)
		}
		alg = parsed
	}

	h.logger.Debug("profile validated", map[string]interface{}{
		"skills":    len(profile.Skills),
		"algorithm": alg,
	})

	return &Output{
		Profile:   profile,
		Algorithm: alg,
		Valid:     true,
	}, nil
}
