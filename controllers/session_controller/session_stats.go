package session_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// SessionStats exposes store counters for monitoring.
func SessionStats(c *gin.Context) {
	store := middleware.GetStore(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session stats", store.Stats()))
}
