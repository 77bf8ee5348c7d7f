package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/metrics_controller"
	"github.com/gin-gonic/gin"
)

func SetupMetricsRoutes(rg *gin.RouterGroup) {
	rg.GET("/filtros", metrics_controller.GetFilters)

	metricas := rg.Group("/metricas")

	metricas.GET("/gerais", metrics_controller.GetGeneralMetrics)
	metricas.GET("/marcas", metrics_controller.GetBrandMetrics)
	metricas.GET("/top-setores", metrics_controller.GetTopSectors)
	metricas.GET("/evolucao", metrics_controller.GetCycleEvolution)
	metricas.GET("/comparativo-ciclos", metrics_controller.GetCycleComparison)
}
