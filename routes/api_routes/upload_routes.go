package api_routes

import (
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/controllers/upload_controller"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", upload_controller.UploadSales)
}
