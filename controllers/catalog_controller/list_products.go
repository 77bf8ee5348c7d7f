package catalog_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/config"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// ListProducts pages through the reference catalog, optionally
// filtered by brand and a search term over sku and name.
func ListProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "100"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 100
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	query := config.CatalogDB.WithContext(ctx).Model(&models.Product{})
	if marca := c.Query("marca"); marca != "" {
		query = query.Where("brand = ?", marca)
	}
	if busca := c.Query("busca"); busca != "" {
		pattern := "%" + busca + "%"
		query = query.Where("name LIKE ? OR sku LIKE ? OR sku_normalized LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[catalog.list-products] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao consultar o catalogo"))
		return
	}

	var products []models.Product
	if err := query.Order("name").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		log.Printf("[catalog.list-products] ERROR list err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao consultar o catalogo"))
		return
	}

	meta := &models.Pagination{
		Page:       offset/limit + 1,
		Limit:      limit,
		Total:      int(total),
		TotalPages: (int(total) + limit - 1) / limit,
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Catalog products", products, meta))
}
