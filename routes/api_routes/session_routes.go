package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/session_controller"
	"github.com/gin-gonic/gin"
)

func SetupSessionRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", session_controller.HealthCheck)
	rg.GET("/clear", session_controller.ClearSession)
	rg.POST("/clear", session_controller.ClearSession)

	session := rg.Group("/session")

	session.GET("/status", session_controller.SessionStatus)
	session.GET("/stats", session_controller.SessionStats)
}
