package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/iaf_controller"
	"github.com/gin-gonic/gin"
)

func SetupIAFRoutes(rg *gin.RouterGroup) {
	iaf := rg.Group("/iaf")

	iaf.GET("/metricas", iaf_controller.GetIAFMetrics)
	iaf.GET("/por-setor", iaf_controller.GetIAFBySector)
	iaf.GET("/vendas", iaf_controller.ListIAFSales)
}
