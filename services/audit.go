package services

import (
	"sort"
	"strings"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// AuditItems lists every deduplicated row whose match outcome was not
// an exact hit. These are the codes worth a manual look: products to
// register, typos, padding issues. An empty motivo keeps everything;
// otherwise only rows with that outcome survive.
func AuditItems(sales []models.SaleRow, motivo string, limit int) []models.AuditItem {
	seen := map[models.AuditItem]struct{}{}
	var out []models.AuditItem
	for _, r := range sales {
		if r.MatchOutcome == MatchExato {
			continue
		}
		if motivo != "" && r.MatchOutcome != motivo {
			continue
		}
		item := models.AuditItem{
			Ciclo:             r.CicloFaturamento,
			Setor:             r.Setor,
			CodigoRevendedora: r.CodigoRevendedora,
			CodigoOriginal:    r.CodigoProduto,
			CodigoNormalizado: r.SKUNormalized,
			NomeProduto:       r.NomeProduto,
			Motivo:            r.MatchOutcome,
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// AuditStatistics summarizes match quality across the whole dataset.
func AuditStatistics(sales []models.SaleRow) models.AuditStats {
	stats := models.AuditStats{TotalVendas: len(sales)}
	uniqueNotFound := map[string]struct{}{}
	for _, r := range sales {
		switch r.MatchOutcome {
		case MatchComZero:
			stats.MatchComZero++
		case MatchSemZero:
			stats.MatchSemZero++
		case NaoEncontrado:
			stats.NaoEncontrados++
			uniqueNotFound[r.SKUNormalized] = struct{}{}
		}
	}
	stats.MatchExato = stats.TotalVendas - stats.NaoEncontrados - stats.MatchComZero - stats.MatchSemZero
	stats.SKUsNaoEncontrados = len(uniqueNotFound)
	if stats.TotalVendas > 0 {
		stats.TaxaMatch = roundTo(float64(stats.TotalVendas-stats.NaoEncontrados)/float64(stats.TotalVendas)*100, 1)
	}
	return stats
}

// UnregisteredProducts aggregates the NOT_FOUND rows per normalized
// SKU: likely new launches, ordered by total value so the expensive
// gaps surface first.
func UnregisteredProducts(sales []models.SaleRow, limit int) []models.UnregisteredProduct {
	type acc struct {
		nome    string
		vendas  int
		itens   float64
		valor   float64
		ciclos  map[string]struct{}
		setores map[string]struct{}
	}

	bySKU := map[string]*acc{}
	for _, r := range sales {
		if r.MatchOutcome != NaoEncontrado {
			continue
		}
		a, ok := bySKU[r.SKUNormalized]
		if !ok {
			a = &acc{
				nome:    r.NomeProduto,
				ciclos:  map[string]struct{}{},
				setores: map[string]struct{}{},
			}
			bySKU[r.SKUNormalized] = a
		}
		a.vendas++
		a.itens += r.QuantidadeItens
		a.valor += r.ValorPraticado
		a.ciclos[r.CicloFaturamento] = struct{}{}
		a.setores[r.Setor] = struct{}{}
	}

	out := make([]models.UnregisteredProduct, 0, len(bySKU))
	for sku, a := range bySKU {
		out = append(out, models.UnregisteredProduct{
			SKU:        sku,
			Nome:       a.nome,
			QtdeVendas: a.vendas,
			TotalItens: int(a.itens),
			ValorTotal: a.valor,
			Ciclos:     joinSorted(a.ciclos),
			Setores:    joinSorted(a.setores),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ValorTotal != out[j].ValorTotal {
			return out[i].ValorTotal > out[j].ValorTotal
		}
		return out[i].SKU < out[j].SKU
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func joinSorted(set map[string]struct{}) string {
	vals := make([]string, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return strings.Join(vals, ", ")
}
