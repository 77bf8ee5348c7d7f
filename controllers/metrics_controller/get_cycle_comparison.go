package metrics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetCycleComparison compares the selected cycles side by side. With
// no explicit selection every loaded cycle is compared.
func GetCycleComparison(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nenhum dado carregado. Faca upload de uma planilha."))
		return
	}

	cycles := queryList(c, "ciclos")
	if len(cycles) == 0 {
		cycles = services.UniqueCycles(s.Sales)
	}

	comparison := services.CycleComparison(s.Customers, s.Sales, cycles)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cycle comparison", comparison))
}
