package metrics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetGeneralMetrics returns the dashboard card figures, optionally
// restricted by cycle and sector.
func GetGeneralMetrics(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nenhum dado carregado. Faca upload de uma planilha."))
		return
	}

	filter := filterFromQuery(c)
	sales := services.ApplyFilters(s.Sales, filter)
	customers := services.ApplyCustomerFilters(s.Customers, filter)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "General metrics", services.GeneralMetrics(customers, sales)))
}
