package aggregating

import (
	"errors"
	"fmt"
)

// ErrUnparsableDate indica que a data de um pedido não está no formato esperado
var ErrUnparsableDate = errors.New("data de pedido inválida")

// AggregationError é um erro com contexto adicional da agregação mensal
type AggregationError struct {
	Err     error  // Erro base
	OrderID string // ID do pedido com a data problemática
	Date    string // Valor bruto da data
}

// Error implementa a interface error
func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s: pedido %s com data %q", e.Err.Error(), e.OrderID, e.Date)
}

// Unwrap retorna o erro subjacente
func (e *AggregationError) Unwrap() error {
	return e.Err
}
