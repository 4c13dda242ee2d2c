package domain

import "github.com/vfg2006/customer-admin-api/pkg/utils"

// MonthsInYear é o tamanho fixo da série mensal (janeiro..dezembro)
const MonthsInYear = 12

// Customer representa um cliente do painel administrativo.
// O cliente é dono exclusivo da sua coleção de pedidos: nenhum Order
// existe fora de um Customer.
type Customer struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Gender           string    `json:"gender"`
	TotalOrders      int       `json:"totalOrders"`
	Canceled         int       `json:"canceled"`
	Returned         int       `json:"returned"`
	TotalSpends      float64   `json:"totalSpends"`
	CommissionEarned float64   `json:"commissionEarned"`
	Graph            []float64 `json:"graph,omitempty"` // Série mensal denormalizada vinda da fonte de dados
	Orders           []Order   `json:"orders"`
}

// Order representa um pedido pertencente a um cliente.
// O ID é único dentro da coleção do cliente dono, mas não globalmente.
type Order struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"` // Formato 2006-01-02
	Items      int     `json:"items"`
	Amount     float64 `json:"amount"`
	Commission float64 `json:"commission"`
}

// Clone devolve uma cópia do cliente com coleções próprias, para que
// mutações no valor retornado nunca alcancem o original.
func (c Customer) Clone() Customer {
	clone := c

	if c.Orders != nil {
		clone.Orders = make([]Order, len(c.Orders))
		copy(clone.Orders, c.Orders)
	}

	if c.Graph != nil {
		clone.Graph = make([]float64, len(c.Graph))
		copy(clone.Graph, c.Graph)
	}

	return clone
}

// LastOrderDate retorna a data do primeiro pedido da coleção, usada na
// coluna "Last OrderDate" da listagem, ou "-" quando não há pedidos
func (c Customer) LastOrderDate() string {
	if len(c.Orders) == 0 {
		return "-"
	}
	return c.Orders[0].Date
}

// RecomputeCounters recalcula os contadores agregados do cliente a partir
// da coleção de pedidos atual. Chamado após a exclusão de um pedido para
// que TotalOrders, TotalSpends e CommissionEarned não fiquem obsoletos.
func RecomputeCounters(c Customer) Customer {
	totalSpends := 0.0
	commission := 0.0

	for _, order := range c.Orders {
		totalSpends += order.Amount
		commission += order.Commission
	}

	c.TotalOrders = len(c.Orders)
	c.TotalSpends = utils.RoundWithTwoDecimalPlace(totalSpends)
	c.CommissionEarned = utils.RoundWithTwoDecimalPlace(commission)

	return c
}
