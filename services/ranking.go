package services

import (
	"sort"
	"strings"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

// ResellerRanking ranks resellers by total sold value. Rows without a
// reseller code fall back to the derived customer id so walk-in
// identities still rank.
func ResellerRanking(sales []models.SaleRow, limit int) []models.ResellerRank {
	type acc struct {
		nome, setor, gerencia string
		itens, valor          float64
		brands                map[string]struct{}
		cycles                map[string]struct{}
	}

	byCode := map[string]*acc{}
	for _, r := range sales {
		code := r.CodigoRevendedora
		if code == "" {
			code = r.CustomerID
		}
		a, ok := byCode[code]
		if !ok {
			a = &acc{
				nome:     r.NomeRevendedora,
				setor:    r.Setor,
				gerencia: r.Gerencia,
				brands:   map[string]struct{}{},
				cycles:   map[string]struct{}{},
			}
			byCode[code] = a
		}
		a.itens += r.QuantidadeItens
		a.valor += r.ValorPraticado
		if r.ResolvedBrand != MarcaDesconhecida {
			a.brands[r.ResolvedBrand] = struct{}{}
		}
		a.cycles[r.CicloFaturamento] = struct{}{}
	}

	out := make([]models.ResellerRank, 0, len(byCode))
	for code, a := range byCode {
		brands := make([]string, 0, len(a.brands))
		for b := range a.brands {
			brands = append(brands, b)
		}
		sort.Strings(brands)

		out = append(out, models.ResellerRank{
			Codigo:        code,
			Nome:          a.nome,
			Setor:         a.setor,
			Gerencia:      a.gerencia,
			TotalItens:    int(a.itens),
			TotalValor:    a.valor,
			QtdeMarcas:    len(brands),
			Marcas:        strings.Join(brands, ", "),
			CiclosAtivos:  len(a.cycles),
			IsMultimarcas: len(brands) >= 2,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalValor != out[j].TotalValor {
			return out[i].TotalValor > out[j].TotalValor
		}
		return out[i].Codigo < out[j].Codigo
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Posicao = i + 1
	}
	return out
}

// ResellerEvolution follows one reseller across cycles, with the
// value variation against the previous cycle. The first cycle carries
// no variation; a zero previous value also yields none.
func ResellerEvolution(sales []models.SaleRow, codigoRevendedora string) []models.ResellerCycle {
	type acc struct {
		itens, valor float64
		brands       map[string]struct{}
	}

	byCycle := map[string]*acc{}
	for _, r := range sales {
		if r.CodigoRevendedora != codigoRevendedora {
			continue
		}
		a, ok := byCycle[r.CicloFaturamento]
		if !ok {
			a = &acc{brands: map[string]struct{}{}}
			byCycle[r.CicloFaturamento] = a
		}
		a.itens += r.QuantidadeItens
		a.valor += r.ValorPraticado
		if r.ResolvedBrand != MarcaDesconhecida {
			a.brands[r.ResolvedBrand] = struct{}{}
		}
	}
	if len(byCycle) == 0 {
		return nil
	}

	cycles := make([]string, 0, len(byCycle))
	for c := range byCycle {
		cycles = append(cycles, c)
	}
	sort.Strings(cycles)

	out := make([]models.ResellerCycle, 0, len(cycles))
	var prev *float64
	for _, cycle := range cycles {
		a := byCycle[cycle]
		rc := models.ResellerCycle{
			Ciclo:      cycle,
			TotalItens: int(a.itens),
			TotalValor: a.valor,
			QtdeMarcas: len(a.brands),
		}
		if prev != nil && *prev > 0 {
			v := roundTo((a.valor-*prev)/(*prev)*100, 2)
			rc.VariacaoPercentual = &v
		}
		out = append(out, rc)
		cur := a.valor
		prev = &cur
	}
	return out
}
