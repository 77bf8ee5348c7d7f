package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetCustomerDetail returns one customer's totals, brand set and
// purchase history. An unknown id is not an error: the payload says
// encontrado=false.
func GetCustomerDetail(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nenhum dado carregado"))
		return
	}

	detail := services.CustomerDetail(s.Sales, c.Param("cliente_id"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer detail", detail))
}
