package session_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck answers uptime probes.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "multimarks-analytics",
	})
}
