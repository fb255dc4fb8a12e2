package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bigyayos/appgolf/internal/courses"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck() error
}

// ImportHealth reports recent course import outcomes
type ImportHealth interface {
	Health() courses.HealthStatus
}

// HealthHandler reports service health
type HealthHandler struct {
	db      HealthChecker
	imports ImportHealth
}

// NewHealthHandler creates a new health handler. imports may be nil.
func NewHealthHandler(db HealthChecker, imports ImportHealth) *HealthHandler {
	return &HealthHandler{db: db, imports: imports}
}

// GetHealth returns 200 when the database answers, 503 otherwise.
// Course import trouble is reported but never fails the check.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status, dbStatus := http.StatusOK, "up"
	if h.db == nil || h.db.HealthCheck() != nil {
		status, dbStatus = http.StatusServiceUnavailable, "down"
	}

	body := gin.H{
		"healthy":   status == http.StatusOK,
		"database":  dbStatus,
		"timestamp": time.Now(),
	}
	if h.imports != nil {
		body["course_import"] = h.imports.Health()
	}
	c.JSON(status, body)
}
