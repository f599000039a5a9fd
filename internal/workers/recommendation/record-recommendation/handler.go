// internal/workers/recommendation/record-recommendation/handler.go
package recordrecommendation

import (
	"context"

	"business-recommender/internal/common/camunda"
	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/recordlog"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "record-recommendation"
)

type Handler struct {
	config       *Config
	sink         recordlog.Sink
	logger       logger.Logger
	errorHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, sink recordlog.Sink, log logger.Logger) *Handler {
	if sink == nil {
		sink = recordlog.NopSink{}
	}
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		sink:         sink,
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

// Execute appends the served response to the recommendation log. Sink
// failures come back as RECOMMENDATION_LOG_FAILED so the broker retries the job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil || input.Response.RequestID == "" {
		return nil, apperrors.NewValidationFailedError("response with a requestId is required", nil)
	}

	rec := recordlog.NewRecord(input.Profile, input.Strategy, input.Response)
	if err := h.sink.Append(ctx, rec); err != nil {
		stdErr := apperrors.AsStandardError(err)
		if stdErr.Code == apperrors.ErrCodeInternal {
			stdErr = apperrors.NewRecommendationLogFailedError(h.sink.Name(), err)
		}
		return nil, stdErr
	}

	return &Output{RecordID: rec.ID, Sink: h.sink.Name()}, nil
}
