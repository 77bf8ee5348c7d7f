package multibrand_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// GetMultibrandCustomers lists the multi-brand customer records,
// paginated.
func GetMultibrandCustomers(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Multibrand customers", []models.CustomerCycleMetric{}, &models.Pagination{}))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limite", "100"))
	if err != nil || limit < 1 || limit > 1000 {
		limit = 100
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	filter := filterFromQuery(c)
	filter.ApenasMultimarcas = true
	filtered := services.ApplyCustomerFilters(s.Customers, filter)

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := filtered[offset:end]

	meta := &models.Pagination{
		Page:       offset/limit + 1,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Multibrand customers", page, meta))
}

func queryList(c *gin.Context, name string) []string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func filterFromQuery(c *gin.Context) models.SalesFilter {
	return models.SalesFilter{
		Ciclos:  queryList(c, "ciclos"),
		Setores: queryList(c, "setores"),
	}
}
