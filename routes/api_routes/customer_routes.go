package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/customer_controller"
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	clientes := rg.Group("/clientes")

	clientes.GET("", customer_controller.ListCustomers)
	clientes.GET("/:cliente_id", customer_controller.GetCustomerDetail)

	ranking := rg.Group("/ranking")

	ranking.GET("", customer_controller.GetResellerRanking)
	ranking.GET("/:codigo/evolucao", customer_controller.GetResellerEvolution)
}
