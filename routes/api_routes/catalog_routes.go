package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/catalog_controller"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(rg *gin.RouterGroup) {
	catalogo := rg.Group("/catalogo")

	catalogo.GET("/produtos", catalog_controller.ListProducts)
	catalogo.GET("/marcas", catalog_controller.ListBrands)
}
