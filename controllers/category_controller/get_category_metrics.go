package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetCategoryMetrics aggregates the sales per category.
func GetCategoryMetrics(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category metrics", []models.CategoryMetric{}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category metrics", services.CategoryMetrics(s.Sales)))
}
