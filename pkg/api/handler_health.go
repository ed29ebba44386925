package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 5 * time.Second

// healthHandler handles GET /healthz, reporting database connectivity and
// worker pool status. Degraded components turn the response into a 503 so
// orchestrators can act on it.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	healthy := true
	body := gin.H{}

	dbHealth, err := s.db.Health(ctx)
	body["database"] = dbHealth
	if err != nil {
		healthy = false
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		body["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			healthy = false
		}
	}

	status := http.StatusOK
	body["status"] = "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		body["status"] = "unhealthy"
	}
	c.JSON(status, body)
}
