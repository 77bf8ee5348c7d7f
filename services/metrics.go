package services

import (
	"math"
	"sort"
	"strings"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// CustomerCycleMetrics rolls the sales-only rows up to one record per
// (cycle, customer): the distinct known brands bought, the totals and
// the multi-brand flag. Rows whose brand resolved to the unknown
// sentinel never count toward the brand set.
func CustomerCycleMetrics(sales []models.SaleRow) []models.CustomerCycleMetric {
	type acc struct {
		metric models.CustomerCycleMetric
		brands map[string]struct{}
	}

	byKey := map[string]*acc{}
	var order []string
	for _, r := range sales {
		key := r.CicloFaturamento + "\x00" + r.CustomerID
		a, ok := byKey[key]
		if !ok {
			a = &acc{
				metric: models.CustomerCycleMetric{
					CicloFaturamento:  r.CicloFaturamento,
					ClienteID:         r.CustomerID,
					Setor:             r.Setor,
					CodigoRevendedora: r.CodigoRevendedora,
					NomeRevendedora:   r.NomeRevendedora,
					Gerencia:          r.Gerencia,
				},
				brands: map[string]struct{}{},
			}
			byKey[key] = a
			order = append(order, key)
		}
		if r.ResolvedBrand != MarcaDesconhecida {
			a.brands[r.ResolvedBrand] = struct{}{}
		}
		a.metric.ItensTotal += r.QuantidadeItens
		a.metric.ValorTotal += r.ValorPraticado
	}

	out := make([]models.CustomerCycleMetric, 0, len(order))
	for _, key := range order {
		a := byKey[key]
		brands := make([]string, 0, len(a.brands))
		for b := range a.brands {
			brands = append(brands, b)
		}
		sort.Strings(brands)
		a.metric.MarcasCompradas = strings.Join(brands, ", ")
		a.metric.QtdeMarcas = len(brands)
		a.metric.IsMultimarcas = len(brands) >= 2
		out = append(out, a.metric)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CicloFaturamento != out[j].CicloFaturamento {
			return out[i].CicloFaturamento < out[j].CicloFaturamento
		}
		return out[i].ClienteID < out[j].ClienteID
	})
	return out
}

// SectorCycleMetrics aggregates customer metrics per (cycle, sector).
func SectorCycleMetrics(customers []models.CustomerCycleMetric) []models.SectorCycleMetric {
	byKey := map[string]*models.SectorCycleMetric{}
	for _, c := range customers {
		key := c.CicloFaturamento + "\x00" + c.Setor
		m, ok := byKey[key]
		if !ok {
			m = &models.SectorCycleMetric{CicloFaturamento: c.CicloFaturamento, Setor: c.Setor}
			byKey[key] = m
		}
		m.ClientesAtivos++
		if c.IsMultimarcas {
			m.ClientesMultimarcas++
		}
		m.ItensTotal += c.ItensTotal
		m.ValorTotal += c.ValorTotal
	}

	out := make([]models.SectorCycleMetric, 0, len(byKey))
	for _, m := range byKey {
		if m.ClientesAtivos > 0 {
			m.PercentMultimarcas = math.Round(float64(m.ClientesMultimarcas) / float64(m.ClientesAtivos) * 100)
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CicloFaturamento != out[j].CicloFaturamento {
			return out[i].CicloFaturamento < out[j].CicloFaturamento
		}
		return out[i].Setor < out[j].Setor
	})
	return out
}

// GeneralMetrics computes the dashboard card figures. Customers that
// are multi-brand in any cycle count once.
func GeneralMetrics(customers []models.CustomerCycleMetric, sales []models.SaleRow) models.GeneralMetrics {
	active := map[string]struct{}{}
	multi := map[string]struct{}{}
	for _, c := range customers {
		active[c.ClienteID] = struct{}{}
		if c.IsMultimarcas {
			multi[c.ClienteID] = struct{}{}
		}
	}

	var itens, valor float64
	for _, r := range sales {
		itens += r.QuantidadeItens
		valor += r.ValorPraticado
	}

	m := models.GeneralMetrics{
		TotalAtivos:      len(active),
		TotalMultimarcas: len(multi),
		TotalItens:       int(itens),
		TotalValor:       valor,
	}
	if m.TotalAtivos > 0 {
		m.PercentMultimarcas = int(math.Round(float64(m.TotalMultimarcas) / float64(m.TotalAtivos) * 100))
	}
	return m
}

// BrandTotals breaks the sales down per resolved brand, highest value
// first.
func BrandTotals(sales []models.SaleRow) []models.BrandTotal {
	type acc struct {
		itens, valor float64
		vendas       int
	}
	byBrand := map[string]*acc{}
	for _, r := range sales {
		a, ok := byBrand[r.ResolvedBrand]
		if !ok {
			a = &acc{}
			byBrand[r.ResolvedBrand] = a
		}
		a.itens += r.QuantidadeItens
		a.valor += r.ValorPraticado
		a.vendas++
	}

	out := make([]models.BrandTotal, 0, len(byBrand))
	for brand, a := range byBrand {
		out = append(out, models.BrandTotal{
			Marca:  brand,
			Itens:  int(a.itens),
			Valor:  a.valor,
			Vendas: a.vendas,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Valor != out[j].Valor {
			return out[i].Valor > out[j].Valor
		}
		return out[i].Marca < out[j].Marca
	})
	return out
}

// TopSectors ranks sectors by total value over the customer metrics.
func TopSectors(customers []models.CustomerCycleMetric, limit int) []models.TopSector {
	type acc struct {
		clients map[string]struct{}
		multi   int
		valor   float64
	}
	bySector := map[string]*acc{}
	for _, c := range customers {
		a, ok := bySector[c.Setor]
		if !ok {
			a = &acc{clients: map[string]struct{}{}}
			bySector[c.Setor] = a
		}
		a.clients[c.ClienteID] = struct{}{}
		if c.IsMultimarcas {
			a.multi++
		}
		a.valor += c.ValorTotal
	}

	out := make([]models.TopSector, 0, len(bySector))
	for sector, a := range bySector {
		out = append(out, models.TopSector{
			Setor:       sector,
			Clientes:    len(a.clients),
			Multimarcas: a.multi,
			Valor:       a.valor,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Valor != out[j].Valor {
			return out[i].Valor > out[j].Valor
		}
		return out[i].Setor < out[j].Setor
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CycleEvolutionList is the cycle time series over the customer
// metrics, sorted by cycle.
func CycleEvolutionList(customers []models.CustomerCycleMetric) []models.CycleEvolution {
	type acc struct {
		clients map[string]struct{}
		multi   int
		valor   float64
	}
	byCycle := map[string]*acc{}
	for _, c := range customers {
		a, ok := byCycle[c.CicloFaturamento]
		if !ok {
			a = &acc{clients: map[string]struct{}{}}
			byCycle[c.CicloFaturamento] = a
		}
		a.clients[c.ClienteID] = struct{}{}
		if c.IsMultimarcas {
			a.multi++
		}
		a.valor += c.ValorTotal
	}

	out := make([]models.CycleEvolution, 0, len(byCycle))
	for cycle, a := range byCycle {
		e := models.CycleEvolution{
			Ciclo:       cycle,
			Clientes:    len(a.clients),
			Multimarcas: a.multi,
			Valor:       a.valor,
		}
		if e.Clientes > 0 {
			e.Percent = roundTo(float64(e.Multimarcas)/float64(e.Clientes)*100, 1)
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ciclo < out[j].Ciclo })
	return out
}

// BrandCombinations counts, among multi-brand customer records, how
// often each exact brand set occurs.
func BrandCombinations(customers []models.CustomerCycleMetric, limit int) []models.BrandCombination {
	counts := map[string]int{}
	for _, c := range customers {
		if !c.IsMultimarcas {
			continue
		}
		counts[c.MarcasCompradas]++
	}

	out := make([]models.BrandCombination, 0, len(counts))
	for combo, n := range counts {
		out = append(out, models.BrandCombination{Marcas: combo, Clientes: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Clientes != out[j].Clientes {
			return out[i].Clientes > out[j].Clientes
		}
		return out[i].Marcas < out[j].Marcas
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CycleComparison compares the selected cycles side by side, with
// variation percentages against the previous cycle in the sorted
// selection. A zero previous value maps to +100% when the current
// value is positive.
func CycleComparison(customers []models.CustomerCycleMetric, sales []models.SaleRow, cycles []string) models.CycleComparison {
	if len(cycles) == 0 {
		return models.CycleComparison{Ciclos: []string{}, Metricas: []models.CycleMetrics{}}
	}

	sorted := append([]string(nil), cycles...)
	sort.Strings(sorted)

	metrics := make([]models.CycleMetrics, 0, len(sorted))
	for _, cycle := range sorted {
		active := map[string]struct{}{}
		multi := map[string]struct{}{}
		for _, c := range customers {
			if c.CicloFaturamento != cycle {
				continue
			}
			active[c.ClienteID] = struct{}{}
			if c.IsMultimarcas {
				multi[c.ClienteID] = struct{}{}
			}
		}
		var itens, valor float64
		for _, r := range sales {
			if r.CicloFaturamento != cycle {
				continue
			}
			itens += r.QuantidadeItens
			valor += r.ValorPraticado
		}

		m := models.CycleMetrics{
			Ciclo:          cycle,
			ClientesAtivos: len(active),
			Multimarcas:    len(multi),
			TotalItens:     int(itens),
			TotalValor:     valor,
		}
		if m.ClientesAtivos > 0 {
			m.PercentMultimarcas = roundTo(float64(m.Multimarcas)/float64(m.ClientesAtivos)*100, 2)
		}
		metrics = append(metrics, m)
	}

	for i := 1; i < len(metrics); i++ {
		prev, cur := &metrics[i-1], &metrics[i]
		cur.VarClientesAtivos = deltaPercent(float64(prev.ClientesAtivos), float64(cur.ClientesAtivos))
		cur.VarMultimarcas = deltaPercent(float64(prev.Multimarcas), float64(cur.Multimarcas))
		cur.VarTotalItens = deltaPercent(float64(prev.TotalItens), float64(cur.TotalItens))
		cur.VarTotalValor = deltaPercent(prev.TotalValor, cur.TotalValor)
	}

	return models.CycleComparison{
		Ciclos:      sorted,
		Metricas:    metrics,
		TotalCiclos: len(sorted),
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func deltaPercent(prev, cur float64) *float64 {
	var v float64
	switch {
	case prev > 0:
		v = roundTo((cur-prev)/prev*100, 2)
	case cur > 0:
		v = 100
	}
	return &v
}

// ApplyCustomerFilters restricts a customer metric slice. Empty
// filter slices are no-ops; management codes match by substring.
func ApplyCustomerFilters(customers []models.CustomerCycleMetric, f models.SalesFilter) []models.CustomerCycleMetric {
	if f.IsZero() {
		return customers
	}
	out := make([]models.CustomerCycleMetric, 0, len(customers))
	for _, c := range customers {
		if !matchIn(c.CicloFaturamento, f.Ciclos) {
			continue
		}
		if !matchIn(c.Setor, f.Setores) {
			continue
		}
		if !matchSubstring(c.Gerencia, f.Gerencias) {
			continue
		}
		if f.ApenasMultimarcas && !c.IsMultimarcas {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ApplyFilters restricts enriched sale rows the same way.
func ApplyFilters(rows []models.SaleRow, f models.SalesFilter) []models.SaleRow {
	if f.IsZero() {
		return rows
	}
	out := make([]models.SaleRow, 0, len(rows))
	for _, r := range rows {
		if !matchIn(r.CicloFaturamento, f.Ciclos) {
			continue
		}
		if !matchIn(r.Setor, f.Setores) {
			continue
		}
		if !matchIn(r.ResolvedBrand, f.Marcas) {
			continue
		}
		if !matchSubstring(r.Gerencia, f.Gerencias) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchIn(value string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if value == w {
			return true
		}
	}
	return false
}

func matchSubstring(value string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if w != "" && strings.Contains(value, w) {
			return true
		}
	}
	return false
}

// CustomerDetail assembles the point lookup for one customer id over
// the sales rows.
func CustomerDetail(sales []models.SaleRow, customerID string) models.CustomerDetail {
	var rows []models.SaleRow
	for _, r := range sales {
		if r.CustomerID == customerID {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return models.CustomerDetail{Encontrado: false}
	}

	first := rows[0]
	detail := models.CustomerDetail{
		Encontrado: true,
		ClienteID:  customerID,
		Nome:       first.NomeRevendedora,
		Codigo:     first.CodigoRevendedora,
		Setor:      first.Setor,
	}

	brandSet := map[string]struct{}{}
	var itens, valor float64
	for _, r := range rows {
		itens += r.QuantidadeItens
		valor += r.ValorPraticado
		if r.ResolvedBrand != MarcaDesconhecida {
			brandSet[r.ResolvedBrand] = struct{}{}
		}
		detail.Compras = append(detail.Compras, models.Purchase{
			Ciclo:         r.CicloFaturamento,
			Setor:         r.Setor,
			CodigoProduto: r.SKUNormalized,
			NomeProduto:   r.ResolvedName,
			Marca:         r.ResolvedBrand,
			Quantidade:    r.QuantidadeItens,
			Valor:         r.ValorPraticado,
		})
	}

	brands := make([]string, 0, len(brandSet))
	for b := range brandSet {
		brands = append(brands, b)
	}
	sort.Strings(brands)

	detail.TotalItens = int(itens)
	detail.TotalValor = valor
	detail.Marcas = brands
	detail.QtdeMarcas = len(brands)
	detail.IsMultimarcas = len(brands) >= 2
	return detail
}

// ListCustomers produces search-result summaries, optionally filtered
// by a case-insensitive substring on name, code or id.
func ListCustomers(customers []models.CustomerCycleMetric, query string, limit int) []models.CustomerSummary {
	query = strings.ToLower(strings.TrimSpace(query))
	seen := map[string]struct{}{}
	var out []models.CustomerSummary
	for _, c := range customers {
		if _, ok := seen[c.ClienteID]; ok {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.NomeRevendedora), query) &&
			!strings.Contains(strings.ToLower(c.CodigoRevendedora), query) &&
			!strings.Contains(strings.ToLower(c.ClienteID), query) {
			continue
		}
		seen[c.ClienteID] = struct{}{}
		out = append(out, models.CustomerSummary{
			ClienteID: c.ClienteID,
			Nome:      c.NomeRevendedora,
			Codigo:    c.CodigoRevendedora,
			Setor:     c.Setor,
		})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
