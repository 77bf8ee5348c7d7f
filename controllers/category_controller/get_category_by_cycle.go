package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetCategoryByCycle breaks categories down per billing cycle.
func GetCategoryByCycle(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category by cycle", []models.CategoryCycleMetric{}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category by cycle", services.CategoryByCycle(s.Sales)))
}
