// Package errors provides the error model shared by the API and the Zeebe workers.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

type ErrorCode string

// Client input errors
const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidAlgorithm ErrorCode = "INVALID_ALGORITHM"
	ErrCodeMentorNotFound   ErrorCode = "MENTOR_NOT_FOUND"
)

// Technical errors
const (
	ErrCodeNotificationSendFailed  ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeRecommendationLogFailed ErrorCode = "RECOMMENDATION_LOG_FAILED"
	ErrCodeCacheUnavailable        ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeInternal                ErrorCode = "INTERNAL_ERROR"
)

type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("StandardError[%s]: %s (%s)", e.Code, e.Message, e.Details)
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// BPMNError is what a worker throws or fails a job with.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 2. Constructors
// ==========================

func NewValidationFailedError(details string, fieldErrors []string) *StandardError {
	e := &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "User profile validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
	if len(fieldErrors) > 0 {
		e.WithMetadata("fieldErrors", fieldErrors)
	}
	return e
}

func NewInvalidAlgorithmError(algorithm string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAlgorithm,
		Message:   "Unsupported algorithm",
		Details:   fmt.Sprintf("algorithm: %s", algorithm),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewMentorNotFoundError(mentorID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMentorNotFound,
		Message:   "Mentor not found",
		Details:   fmt.Sprintf("mentorId: %s", mentorID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewRecommendationLogFailedError(sink string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecommendationLogFailed,
		Message:   "Recommendation log append failed",
		Details:   fmt.Sprintf("sink: %s, error: %s", sink, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Response cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// AsStandardError unwraps err into a StandardError, wrapping anything else as INTERNAL_ERROR.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// ==========================
// 3. Policy
// ==========================

var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeValidationFailed:        "PROFILE_INVALID",
	ErrCodeInvalidAlgorithm:        "PROFILE_INVALID",
	ErrCodeMentorNotFound:          "MENTOR_NOT_FOUND",
	ErrCodeNotificationSendFailed:  "NOTIFICATION_SEND_FAILED",
	ErrCodeRecommendationLogFailed: "RECOMMENDATION_LOG_FAILED",
	ErrCodeCacheUnavailable:        "CACHE_UNAVAILABLE",
	ErrCodeInternal:                "INTERNAL_ERROR",
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeNotificationSendFailed, ErrCodeRecommendationLogFailed:
		return 3
	case ErrCodeCacheUnavailable:
		return 1
	default:
		return 0
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	if fe, ok := stdErr.Metadata["fieldErrors"]; ok {
		vars["fieldErrors"] = fe
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION"), strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	case strings.Contains(codeStr, "MENTOR"), strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "LOG"), strings.Contains(codeStr, "CACHE"):
		return "STORAGE"
	default:
		return "OTHER"
	}
}

// HTTPStatus maps an error code onto the status the API responds with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeInvalidAlgorithm:
		return http.StatusBadRequest
	case ErrCodeMentorNotFound:
		return http.StatusNotFound
	case ErrCodeNotificationSendFailed:
		return http.StatusBadGateway
	case ErrCodeCacheUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
