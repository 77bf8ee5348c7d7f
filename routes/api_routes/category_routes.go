package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/category_controller"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	categorias := rg.Group("/categorias")

	categorias.GET("/lista", category_controller.ListCategories)
	categorias.GET("/metricas", category_controller.GetCategoryMetrics)
	categorias.GET("/por-ciclo", category_controller.GetCategoryByCycle)
	categorias.GET("/por-setor", category_controller.GetCategoryBySector)
	categorias.GET("/:categoria/produtos", category_controller.GetCategoryProducts)
}
