// Package searching implementa a regra de correspondência das buscas das
// tabelas: substring sem distinção de maiúsculas sobre os campos visíveis.
// Os predicados são puros: nenhuma entrada é mutada e o resultado é
// determinístico para entradas idênticas.
package searching

import (
	"strconv"
	"strings"

	"github.com/vfg2006/customer-admin-api/internal/domain"
)

// Customers retorna a subsequência de clientes que correspondem à consulta,
// preservando a ordem original. Um cliente corresponde quando a consulta
// aparece no nome, no e-mail ou no identificador convertido em texto.
// Consulta vazia (ou só espaços) corresponde a todos os registros.
func Customers(records []domain.Customer, query string) []domain.Customer {
	q := strings.ToLower(strings.TrimSpace(query))

	matches := make([]domain.Customer, 0, len(records))
	for _, customer := range records {
		if q == "" || matchCustomer(customer, q) {
			matches = append(matches, customer)
		}
	}

	return matches
}

// Orders retorna a subsequência de pedidos que correspondem à consulta.
// Um pedido corresponde quando a consulta aparece no identificador, na
// data, ou na quantidade, valor ou comissão convertidos em texto.
func Orders(records []domain.Order, query string) []domain.Order {
	q := strings.ToLower(strings.TrimSpace(query))

	matches := make([]domain.Order, 0, len(records))
	for _, order := range records {
		if q == "" || matchOrder(order, q) {
			matches = append(matches, order)
		}
	}

	return matches
}

func matchCustomer(customer domain.Customer, q string) bool {
	return strings.Contains(strings.ToLower(customer.Name), q) ||
		strings.Contains(strings.ToLower(customer.Email), q) ||
		strings.Contains(strconv.Itoa(customer.ID), q)
}

func matchOrder(order domain.Order, q string) bool {
	return strings.Contains(strings.ToLower(order.ID), q) ||
		strings.Contains(strings.ToLower(order.Date), q) ||
		strings.Contains(strconv.Itoa(order.Items), q) ||
		strings.Contains(formatNumber(order.Amount), q) ||
		strings.Contains(formatNumber(order.Commission), q)
}

// formatNumber segue a conversão de número para texto da interface:
// sem zeros à direita e sem notação científica para valores usuais
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
