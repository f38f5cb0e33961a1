package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to clients in the "code" field
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeInvalidPlatformAction  = "INVALID_PLATFORM_ACTION"
	CodeInvalidEmail           = "INVALID_EMAIL"
	CodeInvalidDateRange       = "INVALID_DATE_RANGE"
	CodeDayNotClosed           = "DAY_NOT_CLOSED"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeTenantNotFound         = "TENANT_NOT_FOUND"
	CodeParticipationNotFound  = "PARTICIPATION_NOT_FOUND"
	CodeDuplicateAction        = "DUPLICATE_ACTION"
	CodeDailyLimitReached      = "DAILY_LIMIT_REACHED"
	CodeReplayCooldown         = "REPLAY_COOLDOWN"
	CodeRateLimited            = "RATE_LIMITED"
	CodeRewardSetMisconfigured = "REWARD_SET_MISCONFIGURED"
	CodeTenantMisconfigured    = "TENANT_MISCONFIGURED"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeAlreadyRedeemed        = "ALREADY_REDEEMED"
	CodeStoreUnavailable       = "STORE_UNAVAILABLE"
	CodeInternalError          = "INTERNAL_ERROR"
)

// retryAfterSeconds is advertised on 503 responses
const retryAfterSeconds = 2

// APIError is an error with everything needed to render an HTTP response
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]interface{}
	RetryAfter int
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// WithDetails attaches structured fields to the response body
func (e *APIError) WithDetails(details map[string]interface{}) *APIError {
	e.Details = details
	return e
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

func TooManyRequests(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: code, Message: message}
}

// ServiceUnavailable marks a transient failure the client may retry with backoff
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       code,
		Message:    message,
		RetryAfter: retryAfterSeconds,
		Err:        err,
	}
}

// InternalError is a sanitized 500 - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
