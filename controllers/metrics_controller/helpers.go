package metrics_controller

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// queryList parses a comma separated query parameter into a slice,
// empty when the parameter is absent.
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

// filterFromQuery builds the common filter from the request.
func filterFromQuery(c *gin.Context) models.SalesFilter {
	return models.SalesFilter{
		Ciclos:    queryList(c, "ciclos"),
		Setores:   queryList(c, "setores"),
		Marcas:    queryList(c, "marcas"),
		Gerencias: queryList(c, "gerencias"),
	}
}
