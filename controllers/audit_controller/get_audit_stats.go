package audit_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetAuditStats summarizes match quality over the loaded dataset.
func GetAuditStats(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nenhum dado carregado"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Audit statistics", services.AuditStatistics(s.Sales)))
}
