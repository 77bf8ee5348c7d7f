package iaf_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetIAFBySector breaks premium penetration down per sector.
func GetIAFBySector(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "IAF by sector", []models.IAFSectorMetric{}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "IAF by sector", services.IAFBySector(s.Customers, s.Premium)))
}
