package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/adapter/http/middleware"
)

// Response is the envelope every JSON endpoint answers with.
// Data is set on success, Error otherwise.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *MetaInfo   `json:"meta"`
}

// ErrorInfo describes a failed request
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Fields maps a form field name to its message on VALIDATION_FAILED
	Fields map[string]string `json:"fields,omitempty"`
}

// MetaInfo ties a response to its log lines
type MetaInfo struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

func newMeta(c *gin.Context) *MetaInfo {
	id := c.GetString(middleware.RequestIDKey)
	if id == "" {
		id = uuid.NewString()
	}
	return &MetaInfo{Timestamp: time.Now().UTC().Format(time.RFC3339), RequestID: id}
}

func respond(c *gin.Context, status int, data interface{}, info *ErrorInfo) {
	c.JSON(status, Response{
		Success: info == nil,
		Data:    data,
		Error:   info,
		Meta:    newMeta(c),
	})
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	respond(c, status, data, nil)
}

func respondError(c *gin.Context, status int, code, message string) {
	respond(c, status, nil, &ErrorInfo{Code: code, Message: message})
}

func respondErrorInfo(c *gin.Context, status int, info *ErrorInfo) {
	respond(c, status, nil, info)
}
