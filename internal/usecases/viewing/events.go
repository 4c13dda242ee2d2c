package viewing

// Event é uma intenção do usuário sobre uma visão tabular. Cada evento é
// processado de forma síncrona e roda até o fim antes do próximo.
type Event interface {
	name() string
}

// SetSearch troca o texto de busca da listagem
type SetSearch struct {
	Query string
}

func (SetSearch) name() string { return "set_search" }

// SetPageSize troca o tamanho de página da listagem
type SetPageSize struct {
	Size int
}

func (SetPageSize) name() string { return "set_page_size" }

// SetPage navega para uma página específica
type SetPage struct {
	Page int
}

func (SetPage) name() string { return "set_page" }

// DeleteCustomer remove um cliente da coleção
type DeleteCustomer struct {
	CustomerID int
}

func (DeleteCustomer) name() string { return "delete_customer" }

// DeleteOrder remove um pedido da coleção do cliente dono
type DeleteOrder struct {
	CustomerID int
	OrderID    string
}

func (DeleteOrder) name() string { return "delete_order" }
