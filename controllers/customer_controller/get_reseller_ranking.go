package customer_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetResellerRanking ranks resellers by total sold value.
func GetResellerRanking(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Reseller ranking", []models.ResellerRank{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reseller ranking", services.ResellerRanking(s.Sales, limit)))
}
