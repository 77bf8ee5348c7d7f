package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetCategoryBySector breaks categories down per sector.
func GetCategoryBySector(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category by sector", []models.CategorySectorMetric{}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category by sector", services.CategoryBySector(s.Sales)))
}
