package audit_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetNewProducts lists the unregistered SKUs, most valuable first.
func GetNewProducts(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Unregistered products", []models.UnregisteredProduct{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "100"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 100
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Unregistered products", services.UnregisteredProducts(s.Sales, limit)))
}
