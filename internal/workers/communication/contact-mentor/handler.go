// internal/workers/communication/contact-mentor/handler.go
package contactmentor

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
	TaskType = "contact-mentor"
)

// Contacter is satisfied by *mentorcontact.Service.
type Contacter interface {
	Contact(ctx context.Context, req models.ContactRequest) (*models.ContactResult, error)
}

type Handler struct {
	config       *Config
	contacter    Contacter
	logger       logger.Logger
	errorHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, contacter Contacter, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		contacter:    contacter,
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

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil || input.ContactRequest == nil {
		return nil, apperrors.NewValidationFailedError("contactRequest is required", []string{"contactRequest: is required"})
	}

	raw := make(map[string]interface{}, len(input.ContactRequest)+1)
	for k, v := range input.ContactRequest {
		raw[k] = v
	}
	if input.MentorID != "" {
		raw["mentorId"] = input.MentorID
	}

	req, err := validation.DecodeContactRequest(raw)
	if err != nil {
		return nil, err
	}
	if req.MentorID == "" {
		return nil, apperrors.NewValidationFailedError("mentorId is required", []string{"mentorId: is required"})
	}

	result, err := h.contacter.Contact(ctx, req)
	if err != nil {
		return nil, err
	}

	h.logger.Info("mentor contacted", map[string]interface{}{
		"mentorId":  result.MentorID,
		"contactId": result.ContactID,
		"emailSent": result.EmailSent,
		"smsSent":   result.SMSSent,
	})

	return &Output{ContactResult: result}, nil
}
