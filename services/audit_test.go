package services

import (
	"strings"
	"testing"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

func TestAuditItems(t *testing.T) {
	rows := mkRows()
	items := AuditItems(rows, "", 0)

	// Three non-exact sales, but the duplicated SIAGE rows differ by
	// sector so both survive deduplication.
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for _, it := range items {
		if it.Motivo == MatchExato {
			t.Fatalf("exact match leaked into the audit: %+v", it)
		}
	}
}

func TestAuditItemsDeduplicates(t *testing.T) {
	row := models.SaleRow{
		CicloFaturamento: "202501", Setor: "Norte", CodigoRevendedora: "1001",
		CodigoProduto: "99999", SKUNormalized: "99999", NomeProduto: "PRODUTO NOVO",
		MatchOutcome: NaoEncontrado,
	}
	items := AuditItems([]models.SaleRow{row, row, row}, "", 0)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 after dedup", len(items))
	}
}

func TestAuditItemsMotivoFilter(t *testing.T) {
	items := AuditItems(mkRows(), NaoEncontrado, 0)
	if len(items) != 1 || items[0].Motivo != NaoEncontrado {
		t.Fatalf("motivo filter = %+v", items)
	}
}

func TestAuditStatistics(t *testing.T) {
	stats := AuditStatistics(mkRows())
	if stats.TotalVendas != 5 {
		t.Fatalf("total = %d", stats.TotalVendas)
	}
	if stats.MatchExato != 2 || stats.MatchSemZero != 2 || stats.NaoEncontrados != 1 {
		t.Fatalf("breakdown = %+v", stats)
	}
	if stats.SKUsNaoEncontrados != 1 {
		t.Fatalf("unique not found = %d", stats.SKUsNaoEncontrados)
	}
	// 4 of 5 matched.
	if stats.TaxaMatch != 80.0 {
		t.Fatalf("match rate = %v, want 80.0", stats.TaxaMatch)
	}
}

func TestUnregisteredProducts(t *testing.T) {
	rows := []models.SaleRow{
		{CicloFaturamento: "202501", Setor: "Norte", SKUNormalized: "111", NomeProduto: "NOVO A",
			MatchOutcome: NaoEncontrado, QuantidadeItens: 1, ValorPraticado: 10},
		{CicloFaturamento: "202502", Setor: "Sul", SKUNormalized: "111", NomeProduto: "NOVO A",
			MatchOutcome: NaoEncontrado, QuantidadeItens: 2, ValorPraticado: 20},
		{CicloFaturamento: "202501", Setor: "Norte", SKUNormalized: "222", NomeProduto: "NOVO B",
			MatchOutcome: NaoEncontrado, QuantidadeItens: 1, ValorPraticado: 100},
		{CicloFaturamento: "202501", Setor: "Norte", SKUNormalized: "333", NomeProduto: "REGISTRADO",
			MatchOutcome: MatchExato, QuantidadeItens: 1, ValorPraticado: 999},
	}

	products := UnregisteredProducts(rows, 0)
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	// Highest value first, matched rows never included.
	if products[0].SKU != "222" || products[0].ValorTotal != 100 {
		t.Fatalf("first product = %+v", products[0])
	}

	agg := products[1]
	if agg.QtdeVendas != 2 || agg.TotalItens != 3 || agg.ValorTotal != 30 {
		t.Fatalf("aggregation = %+v", agg)
	}
	if agg.Ciclos != "202501, 202502" {
		t.Fatalf("cycles = %q", agg.Ciclos)
	}
	if !strings.Contains(agg.Setores, "Norte") || !strings.Contains(agg.Setores, "Sul") {
		t.Fatalf("sectors = %q", agg.Setores)
	}

	if limited := UnregisteredProducts(rows, 1); len(limited) != 1 {
		t.Fatalf("limit not applied: %d", len(limited))
	}
}
