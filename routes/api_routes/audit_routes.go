package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/audit_controller"
	"github.com/gin-gonic/gin"
)

func SetupAuditRoutes(rg *gin.RouterGroup) {
	auditoria := rg.Group("/auditoria")

	auditoria.GET("", audit_controller.GetAuditItems)
	auditoria.GET("/estatisticas", audit_controller.GetAuditStats)

	produtos := rg.Group("/produtos-novos")

	produtos.GET("", audit_controller.GetNewProducts)
	produtos.GET("/export", audit_controller.ExportNewProducts)
}
