package metrics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetFilters lists the filter values present in the loaded dataset.
func GetFilters(c *gin.Context) {
	s := middleware.GetSession(c)

	options := models.FilterOptions{
		Ciclos:    []string{},
		Setores:   []string{},
		Marcas:    []string{},
		Gerencias: []string{},
	}
	if s.HasData() {
		options.Ciclos = services.UniqueCycles(s.Sales)
		options.Setores = services.UniqueSectors(s.Sales)
		options.Marcas = services.UniqueBrands(s.Sales)
		options.Gerencias = services.UniqueManagements(s.Sales)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Available filters", options))
}
