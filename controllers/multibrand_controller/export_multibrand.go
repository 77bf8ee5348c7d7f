package multibrand_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportMultibrand downloads the filtered multi-brand records as CSV
// or xlsx.
func ExportMultibrand(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nenhum dado carregado"))
		return
	}

	filter := filterFromQuery(c)
	filter.ApenasMultimarcas = true
	filtered := services.ApplyCustomerFilters(s.Customers, filter)

	table := utils.Table{
		Header: []string{"Ciclo", "Setor", "Codigo", "Nome", "QtdeMarcas", "Marcas", "Itens", "Valor"},
	}
	for _, m := range filtered {
		table.Rows = append(table.Rows, []string{
			m.CicloFaturamento,
			m.Setor,
			m.CodigoRevendedora,
			m.NomeRevendedora,
			fmt.Sprintf("%d", m.QtdeMarcas),
			m.MarcasCompradas,
			utils.FormatNumber(m.ItensTotal, 0),
			utils.FormatCurrency(m.ValorTotal),
		})
	}

	formato := c.DefaultQuery("formato", "csv")
	if formato == "xlsx" {
		content, err := utils.ExportExcel(table, "Multimarcas")
		if err != nil {
			log.Printf("[multibrand.export] ERROR xlsx err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao gerar o arquivo"))
			return
		}
		c.Header("Content-Disposition", "attachment; filename=multimarcas.xlsx")
		c.Data(http.StatusOK, xlsxContentType, content)
		return
	}

	content, err := utils.ExportCSV(table)
	if err != nil {
		log.Printf("[multibrand.export] ERROR csv err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao gerar o arquivo"))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=multimarcas.csv")
	c.Data(http.StatusOK, "text/csv", content)
}
