package upload_controller

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/config"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

// UploadSales receives a sales export, runs the enrichment pipeline
// and stores the resulting dataset in the caller's session. Previous
// session data is dropped first, so a failed upload leaves the
// session empty rather than stale.
func UploadSales(c *gin.Context) {
	s := middleware.GetSession(c)
	store := middleware.GetStore(c)

	log.Printf("[upload.sales] start session=%.8s", s.ID)
	store.Clear(s.ID)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Arquivo nao fornecido"))
		return
	}

	lower := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(lower, ".csv") && !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xls") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Formato de arquivo invalido. Use CSV ou Excel (.xlsx, .xls)"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao ler o arquivo enviado"))
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao ler o arquivo enviado"))
		return
	}

	index, err := services.BuildCatalogIndex(config.CatalogDB)
	if err != nil {
		log.Printf("[upload.sales] ERROR building catalog index err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao carregar o catalogo de produtos"))
		return
	}

	result, err := services.ProcessSalesSheet(content, fileHeader.Filename, index)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, verr.Message))
			return
		}
		log.Printf("[upload.sales] ERROR processing err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Erro ao processar arquivo"))
		return
	}

	customers := services.CustomerCycleMetrics(result.Sales)
	premium := services.ExtractPremiumSales(result.Sales)

	if !store.SetData(s.ID, result, customers, premium) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Sessao expirada durante o processamento"))
		return
	}

	log.Printf("[upload.sales] done session=%.8s rows=%d sales=%d iaf=%d",
		s.ID, result.Stats.TotalRows, result.Stats.TotalSales, len(premium))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Arquivo processado com sucesso", gin.H{
		"estatisticas": result.Stats,
		"avisos":       result.Warnings,
	}))
}
