package services

import (
	"errors"
	"strings"
	"testing"
)

const sampleCSV = `Setor,NomeRevendedora,CodigoRevendedora,CicloFaturamento,CodigoProduto,NomeProduto,Tipo,QuantidadeItens,ValorPraticado,Gerencia
Norte,Maria Silva,1001,202501,12345,BATOM GLAM VERMELHO,Venda,2,"59,80",G1
Norte,Maria Silva,1001,202501,01234,SIAGE SH RECONSTROI,Venda,1,39.90,G1
Sul,Joana Souza,,202501,99999,PRODUTO NOVO XYZ,Venda,1,10,G2
Norte,Maria Silva,1001,202501,12345,BATOM GLAM VERMELHO,Brinde,1,0,G1
`

func sampleIndex() *CatalogIndex {
	ix := NewCatalogIndex()
	ix.Add("12345", CatalogEntry{SKU: "12345", Name: "Batom Glam Vermelho", Brand: "BOT"})
	ix.Add("1234", CatalogEntry{SKU: "1234", Name: "Siage Sh Reconstroi", Brand: "EUD"})
	return ix
}

func TestProcessSalesSheet(t *testing.T) {
	result, err := ProcessSalesSheet([]byte(sampleCSV), "vendas.csv", sampleIndex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(result.Rows))
	}
	if len(result.Sales) != 3 {
		t.Fatalf("got %d sales, want 3", len(result.Sales))
	}

	s := result.Stats
	if s.TotalRows != 4 || s.TotalSales != 3 {
		t.Fatalf("stats totals = %+v", s)
	}
	if s.MatchExact != 1 || s.MatchSansZero != 1 || s.NotFound != 1 {
		t.Fatalf("match breakdown = %+v", s)
	}
	if s.Found != 2 {
		t.Fatalf("found = %d, want 2", s.Found)
	}
}

func TestProcessSalesSheetEnrichment(t *testing.T) {
	result, err := ProcessSalesSheet([]byte(sampleCSV), "vendas.csv", sampleIndex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exact := result.Sales[0]
	if exact.MatchOutcome != MatchExato {
		t.Fatalf("outcome = %q", exact.MatchOutcome)
	}
	if exact.ResolvedBrand != "oBoticário" {
		t.Fatalf("brand alias not applied: %q", exact.ResolvedBrand)
	}
	if exact.CustomerID != "1001" {
		t.Fatalf("customer id = %q, want the reseller code", exact.CustomerID)
	}
	if exact.Category != "Maquiagem" {
		t.Fatalf("category = %q", exact.Category)
	}
	if exact.ValorPraticado != 59.80 {
		t.Fatalf("comma decimal not parsed: %v", exact.ValorPraticado)
	}

	// Second row resolves through the zero-padding variant and the
	// name heuristic flags it as premium hair care.
	hair := result.Sales[1]
	if hair.MatchOutcome != MatchSemZero {
		t.Fatalf("outcome = %q", hair.MatchOutcome)
	}
	if hair.IAFType != IAFCabelos {
		t.Fatalf("iaf type = %q, want %q", hair.IAFType, IAFCabelos)
	}

	// Third row has no reseller code: the id falls back to name_sector.
	unknown := result.Sales[2]
	if unknown.CustomerID != "Joana Souza_Sul" {
		t.Fatalf("fallback customer id = %q", unknown.CustomerID)
	}
	if unknown.ResolvedBrand != MarcaDesconhecida {
		t.Fatalf("brand = %q, want the unknown sentinel", unknown.ResolvedBrand)
	}
	if unknown.ResolvedName != "PRODUTO NOVO XYZ" {
		t.Fatalf("unmatched rows keep the spreadsheet name: %q", unknown.ResolvedName)
	}
}

func TestProcessSalesSheetWarnings(t *testing.T) {
	result, err := ProcessSalesSheet([]byte(sampleCSV), "vendas.csv", sampleIndex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One of three sales missed, well past the 5% threshold.
	var alerted bool
	for _, w := range result.Warnings {
		if strings.HasPrefix(w, "ALERTA:") {
			alerted = true
		}
	}
	if !alerted {
		t.Fatalf("expected an ALERTA warning, got %v", result.Warnings)
	}
}

func TestProcessSalesSheetMissingColumns(t *testing.T) {
	csv := "Setor,NomeRevendedora,CodigoRevendedora,CicloFaturamento,CodigoProduto,NomeProduto,QuantidadeItens\nA,B,C,D,E,F,1\n"

	_, err := ProcessSalesSheet([]byte(csv), "vendas.csv", sampleIndex())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	if len(verr.MissingColumns) != 2 {
		t.Fatalf("missing = %v, want Tipo and ValorPraticado", verr.MissingColumns)
	}
	if !strings.Contains(verr.Error(), "Tipo") || !strings.Contains(verr.Error(), "ValorPraticado") {
		t.Fatalf("message should list every missing column: %q", verr.Error())
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"39.90", 39.90},
		{"59,80", 59.80},
		{"1.234,56", 1234.56},
		{"", 0},
		{"abc", 0},
	}
	for _, c := range cases {
		if got := parseNumber(c.in); got != c.want {
			t.Errorf("parseNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestUniqueSortedSkipsBlanksAndReturnsEmptySlice(t *testing.T) {
	rows := mkRows()
	cycles := UniqueCycles(rows)
	if len(cycles) != 2 || cycles[0] != "202501" || cycles[1] != "202502" {
		t.Fatalf("cycles = %v", cycles)
	}

	empty := UniqueManagements(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("want an empty non-nil slice, got %#v", empty)
	}
}
