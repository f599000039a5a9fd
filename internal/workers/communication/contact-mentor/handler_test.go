// internal/workers/communication/contact-mentor/handler_test.go
package contactmentor

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/mentorcontact"
	"business-recommender/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Implementations
// ==========================

type MockContacter struct {
	ContactFunc func(ctx context.Context, req models.ContactRequest) (*models.ContactResult, error)
	Requests    []models.ContactRequest
}

func (m *MockContacter) Contact(ctx context.Context, req models.ContactRequest) (*models.ContactResult, error) {
	m.Requests = append(m.Requests, req)
	if m.ContactFunc != nil {
		return m.ContactFunc(ctx, req)
	}
	return &models.ContactResult{ContactID: "c-1", MentorID: req.MentorID}, nil
}

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{Timeout: 3 * time.Second}
}

func createTestInput() *Input {
	return &Input{
		MentorID: "m-goods-1",
		ContactRequest: map[string]interface{}{
			"name":         "Asha",
			"email":        "asha@example.com",
			"message":      "I would like advice on a tailoring shop.",
			"businessName": "Tailoring & Sewing Services",
		},
	}
}

// ==========================
// Execute
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	contacter := &MockContacter{}
	h := NewHandler(createTestConfig(), contacter, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	require.Len(t, contacter.Requests, 1)
	req := contacter.Requests[0]
	assert.Equal(t, "m-goods-1", req.MentorID)
	assert.Equal(t, "Asha", req.Name)
	assert.Equal(t, "Tailoring & Sewing Services", req.BusinessName)
	assert.Equal(t, "c-1", output.ContactResult.ContactID)
}

func TestHandler_Execute_MentorIDOverride(t *testing.T) {
	contacter := &MockContacter{}
	h := NewHandler(createTestConfig(), contacter, logger.NewTestLogger(t))

	input := createTestInput()
	input.ContactRequest["mentorId"] = "m-service-1"
	input.MentorID = "m-both-1"

	_, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "m-both-1", contacter.Requests[0].MentorID)

	input.MentorID = ""
	_, err = h.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "m-service-1", contacter.Requests[1].MentorID)
}

func TestHandler_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
	}{
		{name: "missing request", modify: func(in *Input) { in.ContactRequest = nil }},
		{name: "missing mentor", modify: func(in *Input) { in.MentorID = "" }},
		{name: "bad email", modify: func(in *Input) { in.ContactRequest["email"] = "not-an-email" }},
		{name: "empty message", modify: func(in *Input) { in.ContactRequest["message"] = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacter := &MockContacter{}
			h := NewHandler(createTestConfig(), contacter, logger.NewTestLogger(t))

			input := createTestInput()
			tt.modify(input)

			_, err := h.Execute(context.Background(), input)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeValidationFailed, apperrors.AsStandardError(err).Code)
			assert.Empty(t, contacter.Requests)
		})
	}
}

func TestHandler_Execute_ContactErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantBPMN string
	}{
		{name: "unknown mentor", err: apperrors.NewMentorNotFoundError("m-x"), wantBPMN: "MENTOR_NOT_FOUND"},
		{name: "delivery failed", err: apperrors.NewNotificationSendFailedError("email", errors.New("throttled")), wantBPMN: "NOTIFICATION_SEND_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacter := &MockContacter{ContactFunc: func(context.Context, models.ContactRequest) (*models.ContactResult, error) {
				return nil, tt.err
			}}
			h := NewHandler(createTestConfig(), contacter, logger.NewTestLogger(t))

			_, err := h.Execute(context.Background(), createTestInput())
			require.Error(t, err)
			assert.Equal(t, tt.wantBPMN, apperrors.ConvertToBPMNError(apperrors.AsStandardError(err)).Code)
		})
	}
}

// The worker drives the real contact service end to end with a fake SES.
func TestHandler_Execute_WithService(t *testing.T) {
	var sent *ses.SendEmailInput
	sesMock := &MockSESService{SendEmailFunc: func(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
		sent = params
		return &ses.SendEmailOutput{MessageId: aws.String("msg-123")}, nil
	}}

	svc := mentorcontact.NewService(mentorcontact.Config{
		EmailEnabled: true,
		FromEmail:    "noreply@example.org",
	}, sesMock, nil, logger.NewTestLogger(t))
	h := NewHandler(createTestConfig(), svc, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.True(t, output.ContactResult.EmailSent)
	assert.False(t, output.ContactResult.SMSSent)
	assert.Equal(t, "msg-123", output.ContactResult.MessageID)
	assert.Contains(t, output.ContactResult.MailtoURL, "mailto:")
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, createTestConfig().Validate())
	assert.Error(t, (&Config{}).Validate())
}
