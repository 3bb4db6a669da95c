package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/service"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/usecase"
)

// Error codes of the API envelope
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInferenceFailed  = "INFERENCE_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string]string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It provides consistent error handling across all handlers.
func MapUsecaseError(err error) ErrorResponse {
	var validationErr *usecase.ValidationError
	var transportErr *service.TransportError
	var malformedErr *service.MalformedResponseError

	switch {
	case errors.As(err, &validationErr):
		return ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       CodeValidationFailed,
			Message:    "one or more fields are invalid",
			Fields:     validationErr.Fields,
		}
	case errors.As(err, &transportErr):
		return ErrorResponse{
			StatusCode: http.StatusBadGateway,
			Code:       CodeInferenceFailed,
			Message:    transportErr.Error(),
		}
	case errors.As(err, &malformedErr):
		return ErrorResponse{
			StatusCode: http.StatusBadGateway,
			Code:       CodeInferenceFailed,
			Message:    malformedErr.Error(),
		}
	case errors.Is(err, usecase.ErrFormNotFound):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       CodeNotFound,
			Message:    "form not found",
		}
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return ErrorResponse{
			StatusCode: http.StatusConflict,
			Code:       CodeConflict,
			Message:    "a prediction request is already in flight for this form",
		}
	case errors.Is(err, usecase.ErrEmptyDemoInput):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidRequest,
			Message:    usecase.ErrEmptyDemoInput.Error(),
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternal,
			Message:    "internal server error",
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
// Unexpected errors are attached to the context so the request logger reports them.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	if errResp.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respondErrorInfo(c, errResp.StatusCode, &ErrorInfo{
		Code:    errResp.Code,
		Message: errResp.Message,
		Fields:  errResp.Fields,
	})
}

// HandleInvalidUUID handles an invalid UUID parameter error.
func HandleInvalidUUID(c *gin.Context, paramName string) {
	respondError(c, http.StatusBadRequest, CodeInvalidRequest, "invalid "+paramName)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeInvalidRequest, message)
}
