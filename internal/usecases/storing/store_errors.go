package storing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto da coleção de registros
var (
	// Erros de carga inicial
	ErrInvalidData        = errors.New("coleção inicial inválida")
	ErrMissingCustomerID  = errors.New("cliente sem identificador")
	ErrDuplicateCustomer  = errors.New("identificador de cliente duplicado")
	ErrDuplicateOrder     = errors.New("identificador de pedido duplicado dentro do cliente")
	ErrEmptyOrderID       = errors.New("pedido sem identificador")

	// Erros de mutação
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// StoreError é um erro com contexto adicional para a coleção
type StoreError struct {
	Err        error  // Erro base
	CustomerID int    // ID do cliente envolvido (quando aplicável)
	OrderID    string // ID do pedido envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *StoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError cria um novo StoreError
func NewStoreError(err error, details string) *StoreError {
	return &StoreError{
		Err:     err,
		Details: details,
	}
}

// NewCustomerError cria um novo StoreError com o ID do cliente
func NewCustomerError(err error, customerID int, details string) *StoreError {
	return &StoreError{
		Err:        err,
		CustomerID: customerID,
		Details:    details,
	}
}
