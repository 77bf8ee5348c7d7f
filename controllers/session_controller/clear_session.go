package session_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// ClearSession drops the session's dataset so the next upload starts
// clean. Registered for GET too, for easy browser access.
func ClearSession(c *gin.Context) {
	s := middleware.GetSession(c)
	store := middleware.GetStore(c)

	store.Clear(s.ID)
	log.Printf("[session.clear] session=%.8s", s.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cache limpo. Faca upload novamente da planilha.", nil))
}
