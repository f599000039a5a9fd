package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		bpmnCode  string
		retries   int
		retryable bool
	}{
		{
			name:     "validation is thrown",
			err:      NewValidationFailedError("skills is required", []string{"skills: Array must have at least 1 items"}),
			bpmnCode: "PROFILE_INVALID",
		},
		{
			name:     "unknown algorithm shares the profile error",
			err:      NewInvalidAlgorithmError("neural"),
			bpmnCode: "PROFILE_INVALID",
		},
		{
			name:      "notification failures retry",
			err:       NewNotificationSendFailedError("email", fmt.Errorf("throttled")),
			bpmnCode:  "NOTIFICATION_SEND_FAILED",
			retries:   3,
			retryable: true,
		},
		{
			name:      "log failures retry",
			err:       NewRecommendationLogFailedError("postgres", fmt.Errorf("connection reset")),
			bpmnCode:  "RECOMMENDATION_LOG_FAILED",
			retries:   3,
			retryable: true,
		},
		{
			name:     "unmapped code falls back to itself",
			err:      &StandardError{Code: "SOMETHING_ELSE", Message: "x"},
			bpmnCode: "SOMETHING_ELSE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmn := ConvertToBPMNError(tt.err)
			assert.Equal(t, tt.bpmnCode, bpmn.Code)
			assert.Equal(t, tt.retries, bpmn.Retries)
			assert.Equal(t, tt.retryable, bpmn.Retryable)
			assert.Equal(t, string(tt.err.Code), bpmn.ErrorVariables["originalErrorCode"])
		})
	}
}

func TestConvertToBPMNError_CarriesFieldErrors(t *testing.T) {
	bpmn := ConvertToBPMNError(NewValidationFailedError("bad profile", []string{"experience: invalid"}))

	vars := bpmn.ToErrorVariables()
	assert.Equal(t, []string{"experience: invalid"}, vars["fieldErrors"])
	assert.Equal(t, "PROFILE_INVALID", vars["errorCode"])
	assert.Equal(t, false, vars["retryable"])
}

func TestAsStandardError(t *testing.T) {
	original := NewMentorNotFoundError("m-404")
	wrapped := fmt.Errorf("contact: %w", original)

	assert.Same(t, original, AsStandardError(wrapped))

	plain := AsStandardError(stderrors.New("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, ErrCodeInternal, plain.Code)
	assert.Equal(t, "boom", plain.Details)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeInvalidAlgorithm, http.StatusBadRequest},
		{ErrCodeMentorNotFound, http.StatusNotFound},
		{ErrCodeNotificationSendFailed, http.StatusBadGateway},
		{ErrCodeCacheUnavailable, http.StatusServiceUnavailable},
		{ErrCodeRecommendationLogFailed, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.code))
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeValidationFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidAlgorithm))
	assert.Equal(t, "NOTIFICATION", GetErrorCategory(ErrCodeMentorNotFound))
	assert.Equal(t, "STORAGE", GetErrorCategory(ErrCodeCacheUnavailable))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestRemainingRetries(t *testing.T) {
	assert.Equal(t, int32(2), remainingRetries(5, 3))
	assert.Equal(t, int32(1), remainingRetries(2, 3))
	assert.Equal(t, int32(0), remainingRetries(1, 3))
}

func TestStandardError_Error(t *testing.T) {
	assert.Equal(t, "StandardError[INTERNAL_ERROR]: Unexpected error (boom)", NewInternalError(stderrors.New("boom")).Error())
	assert.Equal(t, "StandardError[X]: y", (&StandardError{Code: "X", Message: "y"}).Error())
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeRecommendationLogFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeNotificationSendFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeCacheUnavailable))
	assert.False(t, IsRetryableErrorCode(ErrCodeValidationFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeMentorNotFound))
}
