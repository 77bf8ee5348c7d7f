package models

// CustomerCycleMetric is one row per (cycle, customer): the distinct
// known brands bought, totals, and the multi-brand flag. Immutable
// once computed for a given import.
type CustomerCycleMetric struct {
	CicloFaturamento  string  `json:"ciclo"`
	ClienteID         string  `json:"cliente_id"`
	Setor             string  `json:"setor"`
	CodigoRevendedora string  `json:"codigo"`
	NomeRevendedora   string  `json:"nome"`
	Gerencia          string  `json:"gerencia,omitempty"`
	MarcasCompradas   string  `json:"marcas"`
	QtdeMarcas        int     `json:"qtde_marcas"`
	IsMultimarcas     bool    `json:"is_multimarcas"`
	ItensTotal        float64 `json:"itens"`
	ValorTotal        float64 `json:"valor"`
}

// SectorCycleMetric aggregates customer metrics per (cycle, sector).
type SectorCycleMetric struct {
	CicloFaturamento    string  `json:"ciclo"`
	Setor               string  `json:"setor"`
	ClientesAtivos      int     `json:"clientes_ativos"`
	ClientesMultimarcas int     `json:"clientes_multimarcas"`
	PercentMultimarcas  float64 `json:"percent_multimarcas"`
	ItensTotal          float64 `json:"itens_total"`
	ValorTotal          float64 `json:"valor_total"`
}

// GeneralMetrics feeds the dashboard cards.
type GeneralMetrics struct {
	TotalAtivos        int     `json:"total_ativos"`
	TotalMultimarcas   int     `json:"total_multimarcas"`
	PercentMultimarcas int     `json:"percent_multimarcas"`
	TotalItens         int     `json:"total_itens"`
	TotalValor         float64 `json:"total_valor"`
}

// BrandTotal is the per-brand breakdown, sorted by value.
type BrandTotal struct {
	Marca  string  `json:"marca"`
	Itens  int     `json:"itens"`
	Valor  float64 `json:"valor"`
	Vendas int     `json:"vendas"`
}

// TopSector ranks sectors by total value.
type TopSector struct {
	Setor       string  `json:"setor"`
	Clientes    int     `json:"clientes"`
	Multimarcas int     `json:"multimarcas"`
	Valor       float64 `json:"valor"`
}

// CycleEvolution is the time series per billing cycle.
type CycleEvolution struct {
	Ciclo       string  `json:"ciclo"`
	Clientes    int     `json:"clientes"`
	Multimarcas int     `json:"multimarcas"`
	Percent     float64 `json:"percent"`
	Valor       float64 `json:"valor"`
}

// BrandCombination counts how often a set of brands is bought
// together by a multi-brand customer in one cycle.
type BrandCombination struct {
	Marcas   string `json:"marcas"`
	Clientes int    `json:"clientes"`
}

// CycleMetrics is one cycle's totals inside a comparison, with
// variation percentages against the previous selected cycle.
type CycleMetrics struct {
	Ciclo              string  `json:"ciclo"`
	ClientesAtivos     int     `json:"clientes_ativos"`
	Multimarcas        int     `json:"multimarcas"`
	PercentMultimarcas float64 `json:"percent_multimarcas"`
	TotalItens         int     `json:"total_itens"`
	TotalValor         float64 `json:"total_valor"`

	VarClientesAtivos *float64 `json:"var_clientes_ativos,omitempty"`
	VarMultimarcas    *float64 `json:"var_multimarcas,omitempty"`
	VarTotalItens     *float64 `json:"var_total_itens,omitempty"`
	VarTotalValor     *float64 `json:"var_total_valor,omitempty"`
}

// CycleComparison is the cycle-over-cycle view.
type CycleComparison struct {
	Ciclos      []string       `json:"ciclos"`
	Metricas    []CycleMetrics `json:"metricas"`
	TotalCiclos int            `json:"total_ciclos"`
}

// CustomerSummary is a search-result row for customer selection.
type CustomerSummary struct {
	ClienteID string `json:"cliente_id"`
	Nome      string `json:"nome"`
	Codigo    string `json:"codigo"`
	Setor     string `json:"setor"`
}

// Purchase is one line of a customer's purchase history.
type Purchase struct {
	Ciclo         string  `json:"ciclo"`
	Setor         string  `json:"setor"`
	CodigoProduto string  `json:"codigo_produto"`
	NomeProduto   string  `json:"nome_produto"`
	Marca         string  `json:"marca"`
	Quantidade    float64 `json:"quantidade"`
	Valor         float64 `json:"valor"`
}

// CustomerDetail is the point lookup for one customer.
type CustomerDetail struct {
	Encontrado    bool       `json:"encontrado"`
	ClienteID     string     `json:"cliente_id,omitempty"`
	Nome          string     `json:"nome,omitempty"`
	Codigo        string     `json:"codigo,omitempty"`
	Setor         string     `json:"setor,omitempty"`
	TotalItens    int        `json:"total_itens,omitempty"`
	TotalValor    float64    `json:"total_valor,omitempty"`
	Marcas        []string   `json:"marcas,omitempty"`
	QtdeMarcas    int        `json:"qtde_marcas,omitempty"`
	IsMultimarcas bool       `json:"is_multimarcas,omitempty"`
	Compras       []Purchase `json:"compras,omitempty"`
}

// ResellerRank is one row of the reseller ranking.
type ResellerRank struct {
	Posicao       int     `json:"posicao"`
	Codigo        string  `json:"codigo"`
	Nome          string  `json:"nome"`
	Setor         string  `json:"setor"`
	Gerencia      string  `json:"gerencia,omitempty"`
	TotalItens    int     `json:"total_itens"`
	TotalValor    float64 `json:"total_valor"`
	QtdeMarcas    int     `json:"qtde_marcas"`
	Marcas        string  `json:"marcas"`
	CiclosAtivos  int     `json:"ciclos_ativos"`
	IsMultimarcas bool    `json:"is_multimarcas"`
}

// ResellerCycle is one cycle of a reseller's evolution.
type ResellerCycle struct {
	Ciclo              string   `json:"ciclo"`
	TotalItens         int      `json:"total_itens"`
	TotalValor         float64  `json:"total_valor"`
	QtdeMarcas         int      `json:"qtde_marcas"`
	VariacaoPercentual *float64 `json:"variacao_percentual"`
}

// IAFMetric is the premium-penetration figure for one premium type.
type IAFMetric struct {
	TotalClientes int    `json:"total_clientes"`
	ClientesIAF   int    `json:"clientes_iaf"`
	Percentual    int    `json:"percentual"`
	Tipo          string `json:"tipo"`
}

// IAFSectorMetric breaks premium penetration down by sector.
type IAFSectorMetric struct {
	Setor           string `json:"setor"`
	ClientesAtivos  int    `json:"clientes_ativos"`
	ClientesCabelos int    `json:"clientes_cabelos"`
	PercentCabelos  int    `json:"percent_cabelos"`
	ClientesMake    int    `json:"clientes_make"`
	PercentMake     int    `json:"percent_make"`
}

// IAFSale is one premium line item.
type IAFSale struct {
	Ciclo             string  `json:"ciclo"`
	Setor             string  `json:"setor"`
	CodigoRevendedora string  `json:"codigo_revendedora"`
	NomeRevendedora   string  `json:"nome_revendedora"`
	ClienteID         string  `json:"-"`
	SKU               string  `json:"sku"`
	Nome              string  `json:"nome"`
	Marca             string  `json:"marca"`
	Tipo              string  `json:"tipo"`
	TipoTransacao     string  `json:"-"`
	Quantidade        float64 `json:"quantidade"`
	Valor             float64 `json:"valor"`
}

// AuditItem is one deduplicated row with a non-exact match outcome.
type AuditItem struct {
	Ciclo             string `json:"ciclo"`
	Setor             string `json:"setor"`
	CodigoRevendedora string `json:"codigo_revendedora"`
	CodigoOriginal    string `json:"codigo_produto_original"`
	CodigoNormalizado string `json:"codigo_normalizado"`
	NomeProduto       string `json:"nome_produto"`
	Motivo            string `json:"motivo"`
}

// AuditStats summarizes match quality over the whole dataset.
type AuditStats struct {
	TotalVendas        int     `json:"total_vendas"`
	MatchExato         int     `json:"match_exato"`
	MatchComZero       int     `json:"match_com_zero"`
	MatchSemZero       int     `json:"match_sem_zero"`
	NaoEncontrados     int     `json:"nao_encontrados"`
	SKUsNaoEncontrados int     `json:"skus_unicos_nao_encontrados"`
	TaxaMatch          float64 `json:"taxa_match"`
}

// UnregisteredProduct aggregates NOT_FOUND rows per normalized SKU:
// candidates for catalog registration, most valuable first.
type UnregisteredProduct struct {
	SKU        string  `json:"sku"`
	Nome       string  `json:"nome"`
	QtdeVendas int     `json:"qtde_vendas"`
	TotalItens int     `json:"total_itens"`
	ValorTotal float64 `json:"valor_total"`
	Ciclos     string  `json:"ciclos"`
	Setores    string  `json:"setores"`
}

// CategoryMetric aggregates sales per product category.
type CategoryMetric struct {
	Categoria      string  `json:"categoria"`
	QtdeVendas     int     `json:"qtde_vendas"`
	QtdeItens      int     `json:"qtde_itens"`
	ValorTotal     float64 `json:"valor_total"`
	ProdutosUnicos int     `json:"produtos_unicos"`
	PercentValor   float64 `json:"percent_valor"`
	PercentItens   float64 `json:"percent_itens"`
}

// CategoryCycleMetric is the per-(cycle, category) breakdown.
type CategoryCycleMetric struct {
	Ciclo      string  `json:"ciclo"`
	Categoria  string  `json:"categoria"`
	QtdeItens  int     `json:"qtde_itens"`
	ValorTotal float64 `json:"valor_total"`
}

// CategorySectorMetric is the per-(sector, category) breakdown.
type CategorySectorMetric struct {
	Setor      string  `json:"setor"`
	Categoria  string  `json:"categoria"`
	QtdeItens  int     `json:"qtde_itens"`
	ValorTotal float64 `json:"valor_total"`
}

// CategoryProduct is one product inside a category drill-down.
type CategoryProduct struct {
	SKU        string  `json:"sku"`
	Nome       string  `json:"nome"`
	QtdeItens  int     `json:"qtde_itens"`
	ValorTotal float64 `json:"valor_total"`
}

// FilterOptions lists the filter values present in the loaded data.
type FilterOptions struct {
	Ciclos    []string `json:"ciclos"`
	Setores   []string `json:"setores"`
	Marcas    []string `json:"marcas"`
	Gerencias []string `json:"gerencias"`
}
