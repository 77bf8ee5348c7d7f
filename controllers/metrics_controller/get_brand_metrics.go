package metrics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetBrandMetrics breaks the sales down per resolved brand.
func GetBrandMetrics(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales by brand", []models.BrandTotal{}))
		return
	}

	sales := services.ApplyFilters(s.Sales, filterFromQuery(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales by brand", services.BrandTotals(sales)))
}
