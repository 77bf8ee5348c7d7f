package audit_controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	session_cache "github.com/alcinadadosti-worspace/AtivosEMultimarcas/cache"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/services"
)

func TestExportNewProductsUsesBrazilianNumberFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sales := []models.SaleRow{{
		Setor:            "Norte",
		CicloFaturamento: "202501",
		CodigoProduto:    "99999",
		SKUNormalized:    "99999",
		NomeProduto:      "KIT LANCAMENTO",
		Tipo:             models.TipoVenda,
		QuantidadeItens:  1200,
		ValorPraticado:   2345.67,
		MatchOutcome:     services.NaoEncontrado,
	}}

	store := session_cache.NewStore()
	s := store.GetOrCreate("")
	if !store.SetData(s.ID, &models.ImportResult{Sales: sales}, nil, nil) {
		t.Fatalf("SetData failed for session %q", s.ID)
	}

	router := gin.New()
	router.Use(middleware.Session(store))
	router.GET("/produtos-novos/export", ExportNewProducts)

	req := httptest.NewRequest(http.MethodGet, "/produtos-novos/export", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: s.ID})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %q)", w.Code, http.StatusOK, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"R$ 2.345,67"`) {
		t.Errorf("Valor_Total column not rendered as currency, body = %q", body)
	}
	if !strings.Contains(body, "1.200") {
		t.Errorf("Total_Itens column missing thousand separator, body = %q", body)
	}
}
