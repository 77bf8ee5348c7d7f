package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetResellerEvolution follows one reseller code across cycles.
func GetResellerEvolution(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nenhum dado carregado"))
		return
	}

	evolution := services.ResellerEvolution(s.Sales, c.Param("codigo"))
	if evolution == nil {
		evolution = []models.ResellerCycle{}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reseller evolution", evolution))
}
