// internal/workers/recommendation/build-response/handler.go
package buildresponse

import (
	"context"
	"fmt"
	"strings"

	"business-recommender/internal/common/camunda"
	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/common/metrics"
	"business-recommender/internal/common/validation"
	"business-recommender/internal/enrichment"
	"business-recommender/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "build-response"
)

type Handler struct {
	config       *Config
	enricher     *enrichment.Enricher
	logger       logger.Logger
	errorHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, enricher *enrichment.Enricher, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		enricher:     enricher,
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

// Execute enriches the ranked candidates and wraps them in the response
// envelope. The result is checked against the response schema before it is
// handed back to the process.
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

	resp := h.enricher.BuildResponse(input.RankedCandidates, input.Profile, alg)

	if h.config.ValidateOutput {
		if result := validation.ValidateResponse(resp); !result.Valid {
			return nil, apperrors.NewInternalError(fmt.Errorf(
				"response failed schema validation: %s",
				strings.Join(result.GetErrorMessages(), "; "),
			))
		}
	}

	confidences := make([]int, len(resp.Recommendations))
	for i, r := range resp.Recommendations {
		confidences[i] = r.ConfidenceScore
	}
	metrics.ObserveRecommendation(string(alg), input.Strategy, confidences)

	h.logger.Info("response built", map[string]interface{}{
		"requestId":       resp.RequestID,
		"recommendations": len(resp.Recommendations),
	})

	return &Output{Response: resp}, nil
}
