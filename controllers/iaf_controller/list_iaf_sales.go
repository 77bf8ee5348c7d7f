package iaf_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// ListIAFSales lists the premium line items, optionally filtered by
// type and sector.
func ListIAFSales(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "IAF sales", []models.IAFSale{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "200"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 200
	}

	sales := services.ListPremiumSales(s.Premium, c.Query("tipo"), c.Query("setor"), limit)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "IAF sales", sales))
}
