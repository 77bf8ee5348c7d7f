package models

// SaleRow is one enriched line item from the uploaded sales export.
// The first block mirrors the spreadsheet columns; the second block is
// filled in by the enrichment pipeline.
type SaleRow struct {
	Setor             string  `json:"setor"`
	NomeRevendedora   string  `json:"nome_revendedora"`
	CodigoRevendedora string  `json:"codigo_revendedora"`
	CicloFaturamento  string  `json:"ciclo"`
	CodigoProduto     string  `json:"codigo_produto"`
	NomeProduto       string  `json:"nome_produto"`
	Tipo              string  `json:"tipo"`
	QuantidadeItens   float64 `json:"quantidade_itens"`
	ValorPraticado    float64 `json:"valor_praticado"`
	Gerencia          string  `json:"gerencia,omitempty"`
	MeioCaptacao      string  `json:"meio_captacao,omitempty"`

	SKUNormalized string `json:"codigo_normalizado"`
	ResolvedBrand string `json:"marca"`
	ResolvedName  string `json:"nome_bd"`
	MatchOutcome  string `json:"motivo_match"`
	CustomerID    string `json:"cliente_id"`
	Category      string `json:"categoria"`

	// Premium (IAF) overlay: empty IAFType means not premium.
	IAFType string `json:"tipo_iaf,omitempty"`
	IAFName string `json:"nome_iaf,omitempty"`
}

// IsSale reports whether the row is an actual sale (as opposed to a
// gift or return transaction).
func (r SaleRow) IsSale() bool { return r.Tipo == TipoVenda }

// Transaction type markers used by the export.
const (
	TipoVenda  = "Venda"
	TipoBrinde = "Brinde"
)

// ImportStats summarizes one processed upload. Match counts are
// restricted to Tipo=="Venda" rows.
type ImportStats struct {
	TotalRows     int     `json:"total_linhas"`
	TotalSales    int     `json:"total_vendas"`
	Found         int     `json:"encontrados"`
	NotFound      int     `json:"nao_encontrados"`
	MatchExact    int     `json:"match_exato"`
	MatchWithZero int     `json:"match_com_zero"`
	MatchSansZero int     `json:"match_sem_zero"`
	MatchRate     float64 `json:"taxa_match"`
}

// ImportResult is what the enrichment pipeline hands back to the
// upload handler: the full enriched dataset, the sales-only subset,
// statistics and human-readable warnings.
type ImportResult struct {
	Rows     []SaleRow
	Sales    []SaleRow
	Stats    ImportStats
	Warnings []string
}
