package services

import (
	"math"
	"sort"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// ExtractPremiumSales pulls the premium (IAF) line items out of the
// enriched rows. Gift rows stay in the slice tagged with their
// transaction type so penetration rules can exclude them later.
func ExtractPremiumSales(rows []models.SaleRow) []models.IAFSale {
	var out []models.IAFSale
	for _, r := range rows {
		if r.IAFType == "" {
			continue
		}
		out = append(out, models.IAFSale{
			Ciclo:             r.CicloFaturamento,
			Setor:             r.Setor,
			CodigoRevendedora: r.CodigoRevendedora,
			NomeRevendedora:   r.NomeRevendedora,
			ClienteID:         r.CustomerID,
			SKU:               r.SKUNormalized,
			Nome:              r.IAFName,
			Marca:             r.ResolvedBrand,
			Tipo:              r.IAFType,
			TipoTransacao:     r.Tipo,
			Quantidade:        r.QuantidadeItens,
			Valor:             r.ValorPraticado,
		})
	}
	return out
}

// PenetrationMetrics computes the share of active customers that
// bought at least one premium item of the given type, or of any type
// when tipo is empty. For the Make program, promotional gifts do not
// count toward the numerator. Rounded to the nearest integer.
func PenetrationMetrics(customers []models.CustomerCycleMetric, premium []models.IAFSale, tipo string) models.IAFMetric {
	total := distinctCustomers(customers)

	label := tipo
	if label == "" {
		label = "Todos"
	}
	metric := models.IAFMetric{TotalClientes: total, Tipo: label}
	if total == 0 {
		return metric
	}

	buyers := map[string]struct{}{}
	for _, s := range premium {
		if tipo != "" && s.Tipo != tipo {
			continue
		}
		// The upload path extracts premium sales from Venda rows only,
		// so this branch fires when a caller passes unfiltered rows.
		if s.Tipo == IAFMake && s.TipoTransacao == models.TipoBrinde {
			continue
		}
		buyers[s.ClienteID] = struct{}{}
	}

	metric.ClientesIAF = len(buyers)
	metric.Percentual = int(math.Round(float64(metric.ClientesIAF) / float64(total) * 100))
	return metric
}

// IAFBySector breaks penetration down per sector, both premium types
// side by side, sorted by sector.
func IAFBySector(customers []models.CustomerCycleMetric, premium []models.IAFSale) []models.IAFSectorMetric {
	activeBySector := map[string]map[string]struct{}{}
	for _, c := range customers {
		set, ok := activeBySector[c.Setor]
		if !ok {
			set = map[string]struct{}{}
			activeBySector[c.Setor] = set
		}
		set[c.ClienteID] = struct{}{}
	}

	hair := map[string]map[string]struct{}{}
	makeup := map[string]map[string]struct{}{}
	for _, s := range premium {
		var target map[string]map[string]struct{}
		switch s.Tipo {
		case IAFCabelos:
			target = hair
		case IAFMake:
			if s.TipoTransacao == models.TipoBrinde {
				continue
			}
			target = makeup
		default:
			continue
		}
		set, ok := target[s.Setor]
		if !ok {
			set = map[string]struct{}{}
			target[s.Setor] = set
		}
		set[s.ClienteID] = struct{}{}
	}

	out := make([]models.IAFSectorMetric, 0, len(activeBySector))
	for sector, active := range activeBySector {
		m := models.IAFSectorMetric{
			Setor:           sector,
			ClientesAtivos:  len(active),
			ClientesCabelos: len(hair[sector]),
			ClientesMake:    len(makeup[sector]),
		}
		if m.ClientesAtivos > 0 {
			m.PercentCabelos = int(math.Round(float64(m.ClientesCabelos) / float64(m.ClientesAtivos) * 100))
			m.PercentMake = int(math.Round(float64(m.ClientesMake) / float64(m.ClientesAtivos) * 100))
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Setor < out[j].Setor })
	return out
}

// ListPremiumSales filters the premium line items by type and sector,
// capped at limit.
func ListPremiumSales(premium []models.IAFSale, tipo, setor string, limit int) []models.IAFSale {
	out := make([]models.IAFSale, 0, len(premium))
	for _, s := range premium {
		if tipo != "" && s.Tipo != tipo {
			continue
		}
		if setor != "" && s.Setor != setor {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func distinctCustomers(customers []models.CustomerCycleMetric) int {
	seen := map[string]struct{}{}
	for _, c := range customers {
		seen[c.ClienteID] = struct{}{}
	}
	return len(seen)
}
