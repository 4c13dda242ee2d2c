package utils

import "time"

// OrderDateLayout é o formato das datas de pedidos na coleção
const OrderDateLayout = "2006-01-02"

// ParseOrderDate interpreta a data de um pedido em UTC.
// A data vazia não é aceita: a série mensal depende do mês do pedido.
func ParseOrderDate(dateStr string) (time.Time, error) {
	return time.Parse(OrderDateLayout, dateStr)
}

// ParseDate interpreta um parâmetro de data opcional de query string
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(OrderDateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
