package category_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetCategoryProducts drills into one category's products.
func GetCategoryProducts(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category products", []models.CategoryProduct{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "50"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}

	products := services.CategoryProducts(s.Sales, c.Param("categoria"), limit)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category products", products))
}
