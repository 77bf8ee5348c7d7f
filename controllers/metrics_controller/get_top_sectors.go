package metrics_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetTopSectors ranks sectors by sold value.
func GetTopSectors(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Top sectors", []models.TopSector{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "5"))
	if err != nil || limit < 1 || limit > 20 {
		limit = 5
	}

	customers := services.ApplyCustomerFilters(s.Customers, filterFromQuery(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top sectors", services.TopSectors(customers, limit)))
}
