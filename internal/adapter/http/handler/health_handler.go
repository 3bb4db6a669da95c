package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Maazthepal/Churn-Ml-Project-Frontend/internal/adapter/client"
)

// InferenceHealthChecker reports whether the inference service answers
type InferenceHealthChecker interface {
	Health(ctx context.Context) (*client.HealthResponse, error)
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	redis     *redis.Client
	inference InferenceHealthChecker
}

// NewHealthHandler creates a new health handler.
// Either dependency may be nil when it is not configured.
func NewHealthHandler(redis *redis.Client, inference InferenceHealthChecker) *HealthHandler {
	return &HealthHandler{
		redis:     redis,
		inference: inference,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health.
// A failing form store makes the service unhealthy. A failing inference
// service only degrades it, since pages and the demo still work.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true
	degraded := false

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	if h.inference != nil {
		if _, err := h.inference.Health(ctx); err != nil {
			components["inference"] = "error: " + err.Error()
			degraded = true
		} else {
			components["inference"] = "ok"
		}
	} else {
		components["inference"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	switch {
	case !healthy:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case degraded:
		status = "degraded"
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "redis unreachable"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
