package services

import (
	"sort"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// CategoryMetrics aggregates the sales per product category, with the
// share each category takes of the total value and items.
func CategoryMetrics(sales []models.SaleRow) []models.CategoryMetric {
	type acc struct {
		vendas       int
		itens, valor float64
		skus         map[string]struct{}
	}

	byCat := map[string]*acc{}
	for _, r := range sales {
		a, ok := byCat[r.Category]
		if !ok {
			a = &acc{skus: map[string]struct{}{}}
			byCat[r.Category] = a
		}
		a.vendas++
		a.itens += r.QuantidadeItens
		a.valor += r.ValorPraticado
		a.skus[r.SKUNormalized] = struct{}{}
	}

	var totalValor, totalItens float64
	for _, a := range byCat {
		totalValor += a.valor
		totalItens += a.itens
	}

	out := make([]models.CategoryMetric, 0, len(byCat))
	for cat, a := range byCat {
		m := models.CategoryMetric{
			Categoria:      cat,
			QtdeVendas:     a.vendas,
			QtdeItens:      int(a.itens),
			ValorTotal:     a.valor,
			ProdutosUnicos: len(a.skus),
		}
		if totalValor > 0 {
			m.PercentValor = roundTo(a.valor/totalValor*100, 2)
		}
		if totalItens > 0 {
			m.PercentItens = roundTo(a.itens/totalItens*100, 2)
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ValorTotal != out[j].ValorTotal {
			return out[i].ValorTotal > out[j].ValorTotal
		}
		return out[i].Categoria < out[j].Categoria
	})
	return out
}

// CategoryByCycle breaks categories down per billing cycle, cycles
// ascending and value descending within each cycle.
func CategoryByCycle(sales []models.SaleRow) []models.CategoryCycleMetric {
	type key struct{ cycle, cat string }
	type acc struct{ itens, valor float64 }

	byKey := map[key]*acc{}
	for _, r := range sales {
		k := key{r.CicloFaturamento, r.Category}
		a, ok := byKey[k]
		if !ok {
			a = &acc{}
			byKey[k] = a
		}
		a.itens += r.QuantidadeItens
		a.valor += r.ValorPraticado
	}

	out := make([]models.CategoryCycleMetric, 0, len(byKey))
	for k, a := range byKey {
		out = append(out, models.CategoryCycleMetric{
			Ciclo:      k.cycle,
			Categoria:  k.cat,
			QtdeItens:  int(a.itens),
			ValorTotal: a.valor,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ciclo != out[j].Ciclo {
			return out[i].Ciclo < out[j].Ciclo
		}
		if out[i].ValorTotal != out[j].ValorTotal {
			return out[i].ValorTotal > out[j].ValorTotal
		}
		return out[i].Categoria < out[j].Categoria
	})
	return out
}

// CategoryBySector breaks categories down per sector.
func CategoryBySector(sales []models.SaleRow) []models.CategorySectorMetric {
	type key struct{ sector, cat string }
	type acc struct{ itens, valor float64 }

	byKey := map[key]*acc{}
	for _, r := range sales {
		k := key{r.Setor, r.Category}
		a, ok := byKey[k]
		if !ok {
			a = &acc{}
			byKey[k] = a
		}
		a.itens += r.QuantidadeItens
		a.valor += r.ValorPraticado
	}

	out := make([]models.CategorySectorMetric, 0, len(byKey))
	for k, a := range byKey {
		out = append(out, models.CategorySectorMetric{
			Setor:      k.sector,
			Categoria:  k.cat,
			QtdeItens:  int(a.itens),
			ValorTotal: a.valor,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Setor != out[j].Setor {
			return out[i].Setor < out[j].Setor
		}
		if out[i].ValorTotal != out[j].ValorTotal {
			return out[i].ValorTotal > out[j].ValorTotal
		}
		return out[i].Categoria < out[j].Categoria
	})
	return out
}

// CategoryProducts drills into one category, aggregating per product,
// most valuable first.
func CategoryProducts(sales []models.SaleRow, categoria string, limit int) []models.CategoryProduct {
	type key struct{ sku, nome string }
	type acc struct{ itens, valor float64 }

	byKey := map[key]*acc{}
	for _, r := range sales {
		if r.Category != categoria {
			continue
		}
		k := key{r.SKUNormalized, r.NomeProduto}
		a, ok := byKey[k]
		if !ok {
			a = &acc{}
			byKey[k] = a
		}
		a.itens += r.QuantidadeItens
		a.valor += r.ValorPraticado
	}

	out := make([]models.CategoryProduct, 0, len(byKey))
	for k, a := range byKey {
		out = append(out, models.CategoryProduct{
			SKU:        k.sku,
			Nome:       k.nome,
			QtdeItens:  int(a.itens),
			ValorTotal: a.valor,
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
