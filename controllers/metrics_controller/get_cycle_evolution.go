package metrics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetCycleEvolution returns the per-cycle time series.
func GetCycleEvolution(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cycle evolution", []models.CycleEvolution{}))
		return
	}

	customers := services.ApplyCustomerFilters(s.Customers, filterFromQuery(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cycle evolution", services.CycleEvolutionList(customers)))
}
