package session_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// SessionStatus reports whether the caller's session has data loaded.
// Only a prefix of the id goes out, the full token stays in the
// cookie.
func SessionStatus(c *gin.Context) {
	s := middleware.GetSession(c)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session status", gin.H{
		"has_data":   s.HasData(),
		"session_id": s.ID[:8] + "...",
	}))
}
