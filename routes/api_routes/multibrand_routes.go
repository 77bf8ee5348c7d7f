package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/multibrand_controller"
	"github.com/gin-gonic/gin"
)

func SetupMultibrandRoutes(rg *gin.RouterGroup) {
	multimarcas := rg.Group("/multimarcas")

	multimarcas.GET("", multibrand_controller.GetMultibrandCustomers)
	multimarcas.GET("/combinacoes", multibrand_controller.GetBrandCombinations)
	multimarcas.GET("/export", multibrand_controller.ExportMultibrand)
}
