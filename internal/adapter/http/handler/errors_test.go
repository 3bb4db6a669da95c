package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/schema"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/domain/service"
	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/usecase"
)

func TestMapUsecaseError(t *testing.T) {
	tests := []struct {
		name               string
		err                error
		expectedStatusCode int
		expectedCode       string
		expectedMessage    string
	}{
		{
			name:               "validation failed",
			err:                &usecase.ValidationError{Fields: schema.FieldErrors{"tenure": "Tenure is required"}},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedCode:       "VALIDATION_FAILED",
			expectedMessage:    "one or more fields are invalid",
		},
		{
			name:               "inference status error",
			err:                &service.TransportError{StatusCode: 503, Body: "model loading"},
			expectedStatusCode: http.StatusBadGateway,
			expectedCode:       "INFERENCE_FAILED",
			expectedMessage:    "Server error: 503 - model loading",
		},
		{
			name:               "inference unreachable",
			err:                fmt.Errorf("predict: %w", &service.TransportError{Cause: errors.New("connection refused")}),
			expectedStatusCode: http.StatusBadGateway,
			expectedCode:       "INFERENCE_FAILED",
			expectedMessage:    "connection refused",
		},
		{
			name:               "malformed inference response",
			err:                &service.MalformedResponseError{Reason: "missing risk_level"},
			expectedStatusCode: http.StatusBadGateway,
			expectedCode:       "INFERENCE_FAILED",
			expectedMessage:    "malformed inference response: missing risk_level",
		},
		{
			name:               "form not found",
			err:                usecase.ErrFormNotFound,
			expectedStatusCode: http.StatusNotFound,
			expectedCode:       "NOT_FOUND",
			expectedMessage:    "form not found",
		},
		{
			name:               "submission in flight",
			err:                usecase.ErrSubmissionInFlight,
			expectedStatusCode: http.StatusConflict,
			expectedCode:       "CONFLICT",
			expectedMessage:    "a prediction request is already in flight for this form",
		},
		{
			name:               "empty demo input",
			err:                usecase.ErrEmptyDemoInput,
			expectedStatusCode: http.StatusBadRequest,
			expectedCode:       "INVALID_REQUEST",
			expectedMessage:    "enter a customer ID or description",
		},
		{
			name:               "unknown error",
			err:                errors.New("some unknown error"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedCode:       "INTERNAL_ERROR",
			expectedMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapUsecaseError(tt.err)

			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)
			assert.Equal(t, tt.expectedCode, result.Code)
			assert.Equal(t, tt.expectedMessage, result.Message)
		})
	}
}

func TestHandleUsecaseError(t *testing.T) {
	t.Run("validation fields are included", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleUsecaseError(c, &usecase.ValidationError{Fields: schema.FieldErrors{"Contract": "Invalid option"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"fields":{"Contract":"Invalid option"}`)
		assert.Empty(t, c.Errors)
	})

	t.Run("internal errors are attached for logging", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleUsecaseError(c, errors.New("redis down"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "redis down")
		assert.NotContains(t, w.Body.String(), `"fields"`)
		if assert.Len(t, c.Errors, 1) {
			assert.EqualError(t, c.Errors[0].Err, "redis down")
		}
	})
}

func TestHandleInvalidUUID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleInvalidUUID(c, "form id")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid form id")
}

func TestHandleInvalidRequest(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleInvalidRequest(c, "failed to parse form body")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed to parse form body")
}
