package multibrand_controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	session_cache "github.com/alcinadadosti-worspace/AtivosEMultimarcas/cache"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

func exportTestRouter(t *testing.T, customers []models.CustomerCycleMetric) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session_cache.NewStore()
	s := store.GetOrCreate("")
	result := &models.ImportResult{Sales: []models.SaleRow{{Tipo: models.TipoVenda}}}
	if !store.SetData(s.ID, result, customers, nil) {
		t.Fatalf("SetData failed for session %q", s.ID)
	}

	router := gin.New()
	router.Use(middleware.Session(store))
	router.GET("/multimarcas/export", ExportMultibrand)
	return router, s.ID
}

func TestExportMultibrandUsesBrazilianNumberFormat(t *testing.T) {
	customers := []models.CustomerCycleMetric{{
		CicloFaturamento:  "202501",
		Setor:             "Norte",
		CodigoRevendedora: "1001",
		NomeRevendedora:   "Maria Silva",
		MarcasCompradas:   "Eudora, oBoticário",
		QtdeMarcas:        2,
		IsMultimarcas:     true,
		ItensTotal:        1500,
		ValorTotal:        1234.56,
	}}
	router, id := exportTestRouter(t, customers)

	req := httptest.NewRequest(http.MethodGet, "/multimarcas/export", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: id})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %q)", w.Code, http.StatusOK, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"R$ 1.234,56"`) {
		t.Errorf("Valor column not rendered as currency, body = %q", body)
	}
	if !strings.Contains(body, "1.500") {
		t.Errorf("Itens column missing thousand separator, body = %q", body)
	}
}
