package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/utils"
)

// Spreadsheet column names expected in the sales export.
const (
	ColSetor             = "Setor"
	ColNomeRevendedora   = "NomeRevendedora"
	ColCodigoRevendedora = "CodigoRevendedora"
	ColCicloFaturamento  = "CicloFaturamento"
	ColCodigoProduto     = "CodigoProduto"
	ColNomeProduto       = "NomeProduto"
	ColTipo              = "Tipo"
	ColQuantidadeItens   = "QuantidadeItens"
	ColValorPraticado    = "ValorPraticado"
	ColMeioCaptacao      = "MeioCaptacao"
	ColGerencia          = "Gerencia"
)

var requiredColumns = []string{
	ColSetor, ColNomeRevendedora, ColCodigoRevendedora, ColCicloFaturamento,
	ColCodigoProduto, ColNomeProduto, ColTipo, ColQuantidadeItens, ColValorPraticado,
}

// ValidationError rejects an upload before any enrichment happens:
// either the file could not be decoded or required columns are absent.
type ValidationError struct {
	Message        string
	MissingColumns []string
}

func (e *ValidationError) Error() string { return e.Message }

// NewMissingColumnsError reports every absent required column at once
// so the user fixes the export in a single round trip.
func NewMissingColumnsError(missing []string) *ValidationError {
	return &ValidationError{
		Message:        fmt.Sprintf("Colunas obrigatorias faltando: %s", strings.Join(missing, ", ")),
		MissingColumns: missing,
	}
}

// ProcessSalesSheet runs the whole enrichment pipeline over one
// uploaded file: read, validate, normalize, match against the catalog
// index, derive the customer identity and summarize. Either every row
// is enriched or the import fails as a whole.
func ProcessSalesSheet(content []byte, filename string, ix *CatalogIndex) (*models.ImportResult, error) {
	sheet, err := utils.ReadSheet(content, filename)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var missing []string
	for _, col := range requiredColumns {
		if sheet.ColumnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, NewMissingColumnsError(missing)
	}

	cols := map[string]int{}
	for _, c := range []string{
		ColSetor, ColNomeRevendedora, ColCodigoRevendedora, ColCicloFaturamento,
		ColCodigoProduto, ColNomeProduto, ColTipo, ColQuantidadeItens,
		ColValorPraticado, ColMeioCaptacao, ColGerencia,
	} {
		cols[c] = sheet.ColumnIndex(c)
	}

	rows := make([]models.SaleRow, 0, len(sheet.Rows))
	for _, raw := range sheet.Rows {
		row := models.SaleRow{
			Setor:             strings.TrimSpace(sheet.Cell(raw, cols[ColSetor])),
			NomeRevendedora:   strings.TrimSpace(sheet.Cell(raw, cols[ColNomeRevendedora])),
			CodigoRevendedora: strings.TrimSpace(sheet.Cell(raw, cols[ColCodigoRevendedora])),
			CicloFaturamento:  strings.TrimSpace(sheet.Cell(raw, cols[ColCicloFaturamento])),
			CodigoProduto:     strings.TrimSpace(sheet.Cell(raw, cols[ColCodigoProduto])),
			NomeProduto:       strings.TrimSpace(sheet.Cell(raw, cols[ColNomeProduto])),
			Tipo:              strings.TrimSpace(sheet.Cell(raw, cols[ColTipo])),
			QuantidadeItens:   parseNumber(sheet.Cell(raw, cols[ColQuantidadeItens])),
			ValorPraticado:    parseNumber(sheet.Cell(raw, cols[ColValorPraticado])),
			MeioCaptacao:      strings.TrimSpace(sheet.Cell(raw, cols[ColMeioCaptacao])),
			Gerencia:          strings.TrimSpace(sheet.Cell(raw, cols[ColGerencia])),
		}

		row.SKUNormalized = NormalizeSKU(row.CodigoProduto)

		m := ix.Resolve(row.CodigoProduto)
		row.MatchOutcome = m.Outcome
		if m.Found {
			row.ResolvedBrand = NormalizeBrand(m.Entry.Brand)
			row.ResolvedName = m.Entry.Name
		} else {
			row.ResolvedBrand = MarcaDesconhecida
			row.ResolvedName = row.NomeProduto
		}

		// Premium overlay. A catalog hit decides; the name heuristics
		// only fill in bundles and launches the sub-catalogs miss.
		switch {
		case m.Found && m.Entry.IsIAF:
			row.IAFType = m.Entry.IAFType
			row.IAFName = m.Entry.Name
		case IsPremiumHairProduct(row.NomeProduto):
			row.IAFType = IAFCabelos
			row.IAFName = row.NomeProduto
		case IsPremiumMakeupProduct(row.NomeProduto):
			row.IAFType = IAFMake
			row.IAFName = row.NomeProduto
		}

		if row.CodigoRevendedora != "" {
			row.CustomerID = row.CodigoRevendedora
		} else {
			row.CustomerID = row.NomeRevendedora + "_" + row.Setor
		}

		row.Category = ClassifyCategory(row.NomeProduto)

		rows = append(rows, row)
	}

	sales := make([]models.SaleRow, 0, len(rows))
	for _, r := range rows {
		if r.IsSale() {
			sales = append(sales, r)
		}
	}

	stats := summarize(len(rows), sales)
	result := &models.ImportResult{
		Rows:     rows,
		Sales:    sales,
		Stats:    stats,
		Warnings: buildWarnings(stats),
	}
	return result, nil
}

func summarize(totalRows int, sales []models.SaleRow) models.ImportStats {
	stats := models.ImportStats{TotalRows: totalRows, TotalSales: len(sales)}
	for _, r := range sales {
		switch r.MatchOutcome {
		case MatchExato:
			stats.MatchExact++
		case MatchComZero:
			stats.MatchWithZero++
		case MatchSemZero:
			stats.MatchSansZero++
		default:
			stats.NotFound++
		}
	}
	stats.Found = stats.TotalSales - stats.NotFound
	if stats.TotalSales > 0 {
		stats.MatchRate = float64(stats.Found) / float64(stats.TotalSales)
	}
	return stats
}

func buildWarnings(s models.ImportStats) []string {
	warnings := []string{
		fmt.Sprintf("Total de linhas processadas: %d", s.TotalRows),
		fmt.Sprintf("Registros de venda: %d", s.TotalSales),
		fmt.Sprintf("SKUs encontrados: %d (%.1f%%)", s.Found, s.MatchRate*100),
	}
	if s.MatchWithZero > 0 {
		warnings = append(warnings, fmt.Sprintf("%d SKUs encontrados com match por zero a esquerda", s.MatchWithZero))
	}
	if s.MatchSansZero > 0 {
		warnings = append(warnings, fmt.Sprintf("%d SKUs encontrados com match sem zero a esquerda", s.MatchSansZero))
	}
	if s.TotalSales > 0 {
		notFoundRate := float64(s.NotFound) / float64(s.TotalSales)
		if notFoundRate > 0.05 {
			warnings = append(warnings, fmt.Sprintf("ALERTA: %d SKUs (%.1f%%) nao encontrados no BD", s.NotFound, notFoundRate*100))
		}
	}
	return warnings
}

// parseNumber reads a spreadsheet cell as a float. Cells arrive as
// strings and may use the Brazilian comma decimal with dot thousand
// separators; unparseable cells count as zero.
func parseNumber(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return 0
}

// UniqueCycles lists the distinct billing cycles, sorted.
func UniqueCycles(rows []models.SaleRow) []string {
	return uniqueSorted(rows, func(r models.SaleRow) string { return r.CicloFaturamento })
}

// UniqueSectors lists the distinct sectors.
func UniqueSectors(rows []models.SaleRow) []string {
	return uniqueSorted(rows, func(r models.SaleRow) string { return r.Setor })
}

// UniqueBrands lists the distinct resolved brands, unknown included.
func UniqueBrands(rows []models.SaleRow) []string {
	return uniqueSorted(rows, func(r models.SaleRow) string { return r.ResolvedBrand })
}

// UniqueManagements lists the distinct management region codes,
// skipping rows without one.
func UniqueManagements(rows []models.SaleRow) []string {
	return uniqueSorted(rows, func(r models.SaleRow) string { return r.Gerencia })
}

func uniqueSorted(rows []models.SaleRow, key func(models.SaleRow) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range rows {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
