package services

import (
	"testing"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// mkRows is the shared aggregation fixture: two cycles, two sectors,
// one multi-brand reseller, one walk-in identity, one unmatched row.
func mkRows() []models.SaleRow {
	return []models.SaleRow{
		{
			CicloFaturamento: "202501", Setor: "Norte", CustomerID: "1001",
			CodigoRevendedora: "1001", NomeRevendedora: "Maria Silva", Gerencia: "G1",
			CodigoProduto: "12345", SKUNormalized: "12345", NomeProduto: "BATOM GLAM",
			ResolvedName: "Batom Glam", ResolvedBrand: "oBoticário",
			Tipo: models.TipoVenda, MatchOutcome: MatchExato,
			QuantidadeItens: 2, ValorPraticado: 100,
		},
		{
			CicloFaturamento: "202501", Setor: "Norte", CustomerID: "1001",
			CodigoRevendedora: "1001", NomeRevendedora: "Maria Silva", Gerencia: "G1",
			CodigoProduto: "01234", SKUNormalized: "01234", NomeProduto: "SIAGE SH",
			ResolvedName: "Siage Sh", ResolvedBrand: "Eudora",
			Tipo: models.TipoVenda, MatchOutcome: MatchSemZero,
			QuantidadeItens: 1, ValorPraticado: 50,
		},
		{
			CicloFaturamento: "202501", Setor: "Sul", CustomerID: "Joana Souza_Sul",
			NomeRevendedora: "Joana Souza",
			CodigoProduto:   "99999", SKUNormalized: "99999", NomeProduto: "PRODUTO NOVO",
			ResolvedName: "PRODUTO NOVO", ResolvedBrand: MarcaDesconhecida,
			Tipo: models.TipoVenda, MatchOutcome: NaoEncontrado,
			QuantidadeItens: 1, ValorPraticado: 10,
		},
		{
			CicloFaturamento: "202502", Setor: "Norte", CustomerID: "1001",
			CodigoRevendedora: "1001", NomeRevendedora: "Maria Silva", Gerencia: "G1",
			CodigoProduto: "12345", SKUNormalized: "12345", NomeProduto: "BATOM GLAM",
			ResolvedName: "Batom Glam", ResolvedBrand: "oBoticário",
			Tipo: models.TipoVenda, MatchOutcome: MatchExato,
			QuantidadeItens: 1, ValorPraticado: 80,
		},
		{
			CicloFaturamento: "202501", Setor: "Sul", CustomerID: "2002",
			CodigoRevendedora: "2002", NomeRevendedora: "Ana Lima", Gerencia: "G2",
			CodigoProduto: "01234", SKUNormalized: "01234", NomeProduto: "SIAGE SH",
			ResolvedName: "Siage Sh", ResolvedBrand: "Eudora",
			Tipo: models.TipoVenda, MatchOutcome: MatchSemZero,
			QuantidadeItens: 1, ValorPraticado: 30,
		},
	}
}

func TestCustomerCycleMetrics(t *testing.T) {
	customers := CustomerCycleMetrics(mkRows())
	if len(customers) != 4 {
		t.Fatalf("got %d records, want 4", len(customers))
	}

	first := customers[0]
	if first.CicloFaturamento != "202501" || first.ClienteID != "1001" {
		t.Fatalf("unexpected sort order: %+v", first)
	}
	if !first.IsMultimarcas || first.QtdeMarcas != 2 {
		t.Fatalf("1001 in 202501 should be multi-brand: %+v", first)
	}
	if first.MarcasCompradas != "Eudora, oBoticário" {
		t.Fatalf("brand list = %q", first.MarcasCompradas)
	}
	if first.ValorTotal != 150 || first.ItensTotal != 3 {
		t.Fatalf("totals = %+v", first)
	}

	// The unmatched row's sentinel brand never enters the brand set.
	walkIn := customers[2]
	if walkIn.ClienteID != "Joana Souza_Sul" {
		t.Fatalf("unexpected record: %+v", walkIn)
	}
	if walkIn.QtdeMarcas != 0 || walkIn.IsMultimarcas {
		t.Fatalf("unknown brand counted: %+v", walkIn)
	}
}

func TestGeneralMetrics(t *testing.T) {
	rows := mkRows()
	m := GeneralMetrics(CustomerCycleMetrics(rows), rows)
	if m.TotalAtivos != 3 {
		t.Fatalf("ativos = %d, want 3", m.TotalAtivos)
	}
	if m.TotalMultimarcas != 1 {
		t.Fatalf("multimarcas = %d, want 1", m.TotalMultimarcas)
	}
	if m.PercentMultimarcas != 33 {
		t.Fatalf("percent = %d, want 33", m.PercentMultimarcas)
	}
	if m.TotalItens != 6 || m.TotalValor != 270 {
		t.Fatalf("totals = %+v", m)
	}
}

func TestBrandTotals(t *testing.T) {
	totals := BrandTotals(mkRows())
	if len(totals) != 3 {
		t.Fatalf("got %d brands, want 3", len(totals))
	}
	if totals[0].Marca != "oBoticário" || totals[0].Valor != 180 {
		t.Fatalf("highest value brand = %+v", totals[0])
	}
	if totals[1].Marca != "Eudora" || totals[1].Vendas != 2 {
		t.Fatalf("second brand = %+v", totals[1])
	}
}

func TestTopSectors(t *testing.T) {
	customers := CustomerCycleMetrics(mkRows())
	top := TopSectors(customers, 5)
	if len(top) != 2 {
		t.Fatalf("got %d sectors, want 2", len(top))
	}
	if top[0].Setor != "Norte" || top[0].Valor != 230 {
		t.Fatalf("top sector = %+v", top[0])
	}
	if top[1].Clientes != 2 {
		t.Fatalf("Sul should have 2 distinct customers: %+v", top[1])
	}

	if limited := TopSectors(customers, 1); len(limited) != 1 {
		t.Fatalf("limit not applied: %d", len(limited))
	}
}

func TestCycleEvolutionList(t *testing.T) {
	evolution := CycleEvolutionList(CustomerCycleMetrics(mkRows()))
	if len(evolution) != 2 {
		t.Fatalf("got %d cycles, want 2", len(evolution))
	}
	first := evolution[0]
	if first.Ciclo != "202501" || first.Clientes != 3 || first.Multimarcas != 1 {
		t.Fatalf("first cycle = %+v", first)
	}
	if first.Percent != 33.3 {
		t.Fatalf("percent = %v, want 33.3", first.Percent)
	}
	if evolution[1].Valor != 80 {
		t.Fatalf("second cycle = %+v", evolution[1])
	}
}

func TestBrandCombinations(t *testing.T) {
	combos := BrandCombinations(CustomerCycleMetrics(mkRows()), 0)
	if len(combos) != 1 {
		t.Fatalf("got %d combinations, want 1", len(combos))
	}
	if combos[0].Marcas != "Eudora, oBoticário" || combos[0].Clientes != 1 {
		t.Fatalf("combo = %+v", combos[0])
	}
}

func TestCycleComparison(t *testing.T) {
	rows := mkRows()
	customers := CustomerCycleMetrics(rows)

	// Unsorted selection comes back sorted.
	cmp := CycleComparison(customers, rows, []string{"202502", "202501"})
	if cmp.TotalCiclos != 2 || cmp.Ciclos[0] != "202501" {
		t.Fatalf("cycle order = %+v", cmp.Ciclos)
	}

	first := cmp.Metricas[0]
	if first.ClientesAtivos != 3 || first.TotalItens != 5 || first.TotalValor != 190 {
		t.Fatalf("first cycle = %+v", first)
	}
	if first.VarTotalValor != nil {
		t.Fatal("first cycle must carry no variation")
	}

	second := cmp.Metricas[1]
	if second.VarTotalValor == nil || *second.VarTotalValor != -57.89 {
		t.Fatalf("value variation = %v, want -57.89", second.VarTotalValor)
	}
	if second.VarMultimarcas == nil || *second.VarMultimarcas != -100 {
		t.Fatalf("multi variation = %v, want -100", second.VarMultimarcas)
	}
}

func TestDeltaPercent(t *testing.T) {
	if v := deltaPercent(100, 150); *v != 50 {
		t.Fatalf("got %v, want 50", *v)
	}
	if v := deltaPercent(0, 5); *v != 100 {
		t.Fatalf("zero base with growth should read 100, got %v", *v)
	}
	if v := deltaPercent(0, 0); *v != 0 {
		t.Fatalf("got %v, want 0", *v)
	}
}

func TestApplyCustomerFilters(t *testing.T) {
	customers := CustomerCycleMetrics(mkRows())

	// An empty filter is a no-op.
	if got := ApplyCustomerFilters(customers, models.SalesFilter{}); len(got) != len(customers) {
		t.Fatalf("empty filter dropped records: %d", len(got))
	}

	onlyMulti := ApplyCustomerFilters(customers, models.SalesFilter{ApenasMultimarcas: true})
	if len(onlyMulti) != 1 || onlyMulti[0].ClienteID != "1001" {
		t.Fatalf("multi filter = %+v", onlyMulti)
	}

	// Management codes match by substring.
	g1 := ApplyCustomerFilters(customers, models.SalesFilter{Gerencias: []string{"G1"}})
	if len(g1) != 2 {
		t.Fatalf("gerencia filter kept %d records, want 2", len(g1))
	}
}

func TestApplyFilters(t *testing.T) {
	rows := mkRows()
	got := ApplyFilters(rows, models.SalesFilter{Ciclos: []string{"202501"}, Marcas: []string{"Eudora"}})
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	for _, r := range got {
		if r.ResolvedBrand != "Eudora" || r.CicloFaturamento != "202501" {
			t.Fatalf("filter leaked row: %+v", r)
		}
	}
}

func TestCustomerDetail(t *testing.T) {
	detail := CustomerDetail(mkRows(), "1001")
	if !detail.Encontrado {
		t.Fatal("expected the customer to be found")
	}
	if detail.Nome != "Maria Silva" || detail.Codigo != "1001" {
		t.Fatalf("identity = %+v", detail)
	}
	if detail.TotalItens != 4 || detail.TotalValor != 230 {
		t.Fatalf("totals = %+v", detail)
	}
	if detail.QtdeMarcas != 2 || !detail.IsMultimarcas {
		t.Fatalf("brands = %+v", detail)
	}
	if len(detail.Compras) != 3 {
		t.Fatalf("got %d purchases, want 3", len(detail.Compras))
	}

	if missing := CustomerDetail(mkRows(), "nope"); missing.Encontrado {
		t.Fatal("unknown id must come back not found")
	}
}

func TestListCustomers(t *testing.T) {
	customers := CustomerCycleMetrics(mkRows())

	all := ListCustomers(customers, "", 0)
	if len(all) != 3 {
		t.Fatalf("got %d customers, want 3 distinct", len(all))
	}

	byName := ListCustomers(customers, "joana", 0)
	if len(byName) != 1 || byName[0].Nome != "Joana Souza" {
		t.Fatalf("search result = %+v", byName)
	}

	if limited := ListCustomers(customers, "", 1); len(limited) != 1 {
		t.Fatalf("limit not applied: %d", len(limited))
	}
}
