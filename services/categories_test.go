package services

import (
	"testing"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

func categoryFixture() []models.SaleRow {
	return []models.SaleRow{
		{CicloFaturamento: "202501", Setor: "Norte", Category: "Maquiagem",
			SKUNormalized: "111", NomeProduto: "BATOM GLAM", QuantidadeItens: 2, ValorPraticado: 60},
		{CicloFaturamento: "202501", Setor: "Norte", Category: "Maquiagem",
			SKUNormalized: "111", NomeProduto: "BATOM GLAM", QuantidadeItens: 1, ValorPraticado: 30},
		{CicloFaturamento: "202502", Setor: "Sul", Category: "Cabelos",
			SKUNormalized: "222", NomeProduto: "SIAGE SH", QuantidadeItens: 1, ValorPraticado: 10},
	}
}

func TestCategoryMetrics(t *testing.T) {
	metrics := CategoryMetrics(categoryFixture())
	if len(metrics) != 2 {
		t.Fatalf("got %d categories, want 2", len(metrics))
	}

	makeup := metrics[0]
	if makeup.Categoria != "Maquiagem" {
		t.Fatalf("order: %+v", metrics)
	}
	if makeup.QtdeVendas != 2 || makeup.QtdeItens != 3 || makeup.ValorTotal != 90 {
		t.Fatalf("makeup totals = %+v", makeup)
	}
	if makeup.ProdutosUnicos != 1 {
		t.Fatalf("unique products = %d", makeup.ProdutosUnicos)
	}
	if makeup.PercentValor != 90.0 || makeup.PercentItens != 75.0 {
		t.Fatalf("shares = %+v", makeup)
	}
}

func TestCategoryByCycle(t *testing.T) {
	byCycle := CategoryByCycle(categoryFixture())
	if len(byCycle) != 2 {
		t.Fatalf("got %d entries, want 2", len(byCycle))
	}
	if byCycle[0].Ciclo != "202501" || byCycle[0].Categoria != "Maquiagem" {
		t.Fatalf("first entry = %+v", byCycle[0])
	}
	if byCycle[1].Ciclo != "202502" || byCycle[1].ValorTotal != 10 {
		t.Fatalf("second entry = %+v", byCycle[1])
	}
}

func TestCategoryBySector(t *testing.T) {
	bySector := CategoryBySector(categoryFixture())
	if len(bySector) != 2 {
		t.Fatalf("got %d entries, want 2", len(bySector))
	}
	if bySector[0].Setor != "Norte" || bySector[0].QtdeItens != 3 {
		t.Fatalf("first entry = %+v", bySector[0])
	}
}

func TestCategoryProducts(t *testing.T) {
	products := CategoryProducts(categoryFixture(), "Maquiagem", 0)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].SKU != "111" || products[0].ValorTotal != 90 || products[0].QtdeItens != 3 {
		t.Fatalf("product = %+v", products[0])
	}

	if none := CategoryProducts(categoryFixture(), "Solar", 0); len(none) != 0 {
		t.Fatalf("unexpected products for empty category: %+v", none)
	}
}
