package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck is one dependency probe
type HealthCheck interface {
	Name() string
	Check(ctx context.Context) (map[string]any, error)
}

// HealthHandler answers liveness and readiness probes
type HealthHandler struct {
	checks  []HealthCheck
	timeout time.Duration
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(timeout time.Duration, checks ...HealthCheck) *HealthHandler {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HealthHandler{checks: checks, timeout: timeout}
}

// Live handles GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /health
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]any, len(h.checks))
	for _, check := range h.checks {
		details, err := check.Check(ctx)
		if err != nil {
			status = http.StatusServiceUnavailable
			results[check.Name()] = gin.H{"status": "down", "error": err.Error()}
			continue
		}
		if details == nil {
			details = map[string]any{}
		}
		details["status"] = "up"
		results[check.Name()] = details
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "checks": results})
}
