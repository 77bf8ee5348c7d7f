package iaf_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetIAFMetrics returns penetration for each premium type plus the
// combined figure.
func GetIAFMetrics(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nenhum dado carregado"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "IAF metrics", gin.H{
		"cabelos": services.PenetrationMetrics(s.Customers, s.Premium, services.IAFCabelos),
		"make":    services.PenetrationMetrics(s.Customers, s.Premium, services.IAFMake),
		"total":   services.PenetrationMetrics(s.Customers, s.Premium, ""),
	}))
}
