package domain

import "time"

// DashboardStats são os números de topo do dashboard administrativo
type DashboardStats struct {
	TotalCustomers     int     `json:"total_customers"`
	NewSignups         int     `json:"new_signups"`
	ReturningCustomers int     `json:"returning_customers"`
	BlockedCustomers   int     `json:"blocked_customers"`
	TotalOrders        int     `json:"total_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
}

// ProductStats resume o catálogo de produtos
type ProductStats struct {
	TotalProducts int `json:"total_products"`
	ActiveCount   int `json:"active_count"`
	LowStockCount int `json:"low_stock_count"`
	OutOfStock    int `json:"out_of_stock"`
}

// TopProduct é uma entrada do ranking de produtos mais vendidos
type TopProduct struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

// RecentOrder é uma entrada da lista de pedidos recentes do dashboard
type RecentOrder struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customer_name"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
}

// Snapshot agrupa a última leitura completa do colaborador de
// estatísticas, para que o dashboard possa renderizar dados obsoletos
// quando o upstream estiver fora do ar
type Snapshot struct {
	DashboardStats *DashboardStats `json:"dashboard_stats,omitempty"`
	ProductStats   *ProductStats   `json:"product_stats,omitempty"`
	TopProducts    []TopProduct    `json:"top_products,omitempty"`
	RecentOrders   []RecentOrder   `json:"recent_orders,omitempty"`
	RefreshedAt    time.Time       `json:"refreshed_at"`
	RunID          string          `json:"run_id,omitempty"` // ID da execução do job que gerou o snapshot
}
