package catalog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/config"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// ListBrands lists every brand in the catalog with its product count.
func ListBrands(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var brands []models.BrandCount
	if err := config.CatalogDB.WithContext(ctx).
		Model(&models.Product{}).
		Select("brand, COUNT(*) AS count").
		Group("brand").
		Order("count DESC").
		Scan(&brands).Error; err != nil {
		log.Printf("[catalog.list-brands] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao consultar o catalogo"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog brands", brands))
}
