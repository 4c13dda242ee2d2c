// Package storing mantém a coleção de clientes em memória e é o único
// lugar onde mutações (exclusões) acontecem. A coleção é carregada uma vez
// na inicialização e as mutações vivem apenas durante o processo.
package storing

import (
	"fmt"
	"sync"

	"github.com/vfg2006/customer-admin-api/internal/domain"
)

// RecordStore define o contrato de leitura e mutação da coleção
type RecordStore interface {
	Snapshot() []domain.Customer
	GetCustomer(id int) (domain.Customer, bool)
	DeleteCustomer(id int) error
	DeleteOrder(customerID int, orderID string) (domain.Customer, error)
	Len() int
}

// Store é a instância única da coleção compartilhada entre as visões de
// listagem e de detalhes. O mutex existe porque os eventos chegam pela
// superfície HTTP, ainda que cada evento rode até o fim.
type Store struct {
	mu        sync.RWMutex
	customers []domain.Customer
}

// New valida e embrulha a coleção fornecida pela fonte de dados externa.
// Falha com ErrInvalidData quando algum cliente não tem identificador
// único ou contém pedidos com identificadores duplicados.
func New(customers []domain.Customer) (*Store, error) {
	seen := make(map[int]struct{}, len(customers))

	for _, customer := range customers {
		if customer.ID == 0 {
			return nil, NewStoreError(ErrInvalidData, ErrMissingCustomerID.Error())
		}

		if _, ok := seen[customer.ID]; ok {
			return nil, NewCustomerError(ErrInvalidData, customer.ID, ErrDuplicateCustomer.Error())
		}
		seen[customer.ID] = struct{}{}

		if err := validateOrders(customer); err != nil {
			return nil, err
		}
	}

	// Cópia própria: o chamador pode descartar ou reutilizar a fatia original
	owned := make([]domain.Customer, len(customers))
	for i, customer := range customers {
		owned[i] = customer.Clone()
	}

	return &Store{customers: owned}, nil
}

func validateOrders(customer domain.Customer) error {
	seen := make(map[string]struct{}, len(customer.Orders))

	for _, order := range customer.Orders {
		if order.ID == "" {
			return NewCustomerError(ErrInvalidData, customer.ID, ErrEmptyOrderID.Error())
		}

		if _, ok := seen[order.ID]; ok {
			return &StoreError{
				Err:        ErrInvalidData,
				CustomerID: customer.ID,
				OrderID:    order.ID,
				Details:    ErrDuplicateOrder.Error(),
			}
		}
		seen[order.ID] = struct{}{}
	}

	return nil
}

// Snapshot retorna a visão atual da coleção na ordem de inserção,
// refletindo todas as mutações anteriores. A leitura não muta estado.
func (s *Store) Snapshot() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Customer, len(s.customers))
	for i, customer := range s.customers {
		snapshot[i] = customer.Clone()
	}

	return snapshot
}

// GetCustomer retorna uma cópia do cliente com o ID informado
func (s *Store) GetCustomer(id int) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.customers[idx].Clone(), true
	}

	return domain.Customer{}, false
}

// Len retorna o número de clientes na coleção
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.customers)
}

// DeleteCustomer remove o cliente com o ID informado. Falha com
// ErrCustomerNotFound quando ausente; não há efeitos em cascata além da
// remoção (os pedidos morrem com o dono).
func (s *Store) DeleteCustomer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return NewCustomerError(ErrCustomerNotFound, id, fmt.Sprintf("cliente %d não existe na coleção", id))
	}

	s.customers = append(s.customers[:idx], s.customers[idx+1:]...)

	return nil
}

// DeleteOrder remove o pedido da coleção do cliente dono e devolve o
// cliente atualizado como um novo valor, com os contadores agregados
// recalculados. Falha com ErrCustomerNotFound se o cliente não existe;
// um pedido ausente é um no-op e devolve o cliente inalterado.
func (s *Store) DeleteOrder(customerID int, orderID string) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(customerID)
	if idx < 0 {
		return domain.Customer{}, NewCustomerError(ErrCustomerNotFound, customerID,
			fmt.Sprintf("cliente %d não existe na coleção", customerID))
	}

	customer := s.customers[idx]

	orderIdx := -1
	for i, order := range customer.Orders {
		if order.ID == orderID {
			orderIdx = i
			break
		}
	}

	if orderIdx < 0 {
		return customer.Clone(), nil
	}

	updated := customer.Clone()
	updated.Orders = append(updated.Orders[:orderIdx], updated.Orders[orderIdx+1:]...)
	updated = domain.RecomputeCounters(updated)

	s.customers[idx] = updated

	return updated.Clone(), nil
}

func (s *Store) indexOf(id int) int {
	for i, customer := range s.customers {
		if customer.ID == id {
			return i
		}
	}
	return -1
}
