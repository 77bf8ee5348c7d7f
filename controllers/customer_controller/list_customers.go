package customer_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// ListCustomers returns customer summaries for selection, optionally
// narrowed by a search term.
func ListCustomers(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Customers", []models.CustomerSummary{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "50"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}

	result := services.ListCustomers(s.Customers, c.Query("busca"), limit)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customers", result))
}
