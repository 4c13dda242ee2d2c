package domain

// ViewState carrega o estado de interação de uma visão tabular. É um valor
// explícito passado e devolvido pelo ViewController, em vez de estado
// compartilhado escondido entre componentes.
type ViewState struct {
	Search   string `json:"search"`
	PageSize int    `json:"page_size"`
	Page     int    `json:"page"`
}

// CustomerTable é a única fonte de verdade para renderizar a listagem:
// a fatia visível já filtrada e paginada, mais os parâmetros efetivos.
type CustomerTable struct {
	Customers     []Customer `json:"customers"`
	TotalMatches  int        `json:"total_matches"`
	EffectivePage int        `json:"effective_page"`
	TotalPages    int        `json:"total_pages"`
	Search        string     `json:"search"`
	PageSize      int        `json:"page_size"`
}

// CustomerDetail é o valor de renderização da visão de detalhes: o cliente,
// seus pedidos filtrados e a série mensal pronta para o gráfico. A série é
// independente da paginação da listagem.
type CustomerDetail struct {
	Customer      Customer  `json:"customer"`
	Orders        []Order   `json:"orders"`
	MonthlySeries []float64 `json:"monthly_series"`
	Search        string    `json:"search"`
}
