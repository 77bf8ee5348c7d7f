package audit_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetAuditItems lists the rows whose match outcome was not exact,
// optionally filtered by outcome.
func GetAuditItems(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Audit items", []models.AuditItem{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "100"))
	if err != nil || limit < 1 || limit > 1000 {
		limit = 100
	}

	items := services.AuditItems(s.Sales, c.Query("motivo"), limit)
	if items == nil {
		items = []models.AuditItem{}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Audit items", items))
}
