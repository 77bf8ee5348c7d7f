package multibrand_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetBrandCombinations lists the most frequent brand sets among
// multi-brand customers.
func GetBrandCombinations(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand combinations", []models.BrandCombination{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "20"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 20
	}

	filter := filterFromQuery(c)
	filter.ApenasMultimarcas = true
	filtered := services.ApplyCustomerFilters(s.Customers, filter)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brand combinations", services.BrandCombinations(filtered, limit)))
}
