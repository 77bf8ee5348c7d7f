package audit_controller

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

// ExportNewProducts downloads the unregistered SKU aggregation as CSV
// or xlsx.
func ExportNewProducts(c *gin.Context) {
	s := middleware.GetSession(c)
	if !s.HasData() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nenhum dado carregado"))
		return
	}

	products := services.UnregisteredProducts(s.Sales, 0)
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Nenhum produto novo encontrado"))
		return
	}

	table := utils.Table{
		Header: []string{"SKU", "Nome_Produto", "Qtde_Vendas", "Total_Itens", "Valor_Total", "Ciclos", "Setores"},
	}
	for _, p := range products {
		table.Rows = append(table.Rows, []string{
			p.SKU,
			p.Nome,
			fmt.Sprintf("%d", p.QtdeVendas),
			utils.FormatNumber(float64(p.TotalItens), 0),
			utils.FormatCurrency(p.ValorTotal),
			p.Ciclos,
			p.Setores,
		})
	}

	if c.DefaultQuery("formato", "csv") == "xlsx" {
		content, err := utils.ExportExcel(table, "ProdutosNovos")
		if err != nil {
			log.Printf("[audit.export-new-products] ERROR xlsx err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao gerar o arquivo"))
			return
		}
		c.Header("Content-Disposition", "attachment; filename=produtos_novos.xlsx")
		c.Data(http.StatusOK, xlsxContentType, content)
		return
	}

	content, err := utils.ExportCSV(table)
	if err != nil {
		log.Printf("[audit.export-new-products] ERROR csv err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao gerar o arquivo"))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=produtos_novos.csv")
	c.Data(http.StatusOK, "text/csv", content)
}
