// Package viewing orquestra a derivação das visões tabulares: aplica a
// mutação do evento, refiltra o snapshot da coleção e repagina, nessa
// ordem, em toda interação.
package viewing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-admin-api/internal/domain"
	"github.com/vfg2006/customer-admin-api/internal/usecases/aggregating"
	"github.com/vfg2006/customer-admin-api/internal/usecases/paginating"
	"github.com/vfg2006/customer-admin-api/internal/usecases/searching"
	"github.com/vfg2006/customer-admin-api/internal/usecases/storing"
)

// Viewer é a fronteira de renderização do módulo: recebe intenções e
// devolve os valores prontos para desenhar tabela e gráfico
type Viewer interface {
	DeriveView(state domain.ViewState, event Event) (domain.ViewState, *domain.CustomerTable, error)
	DeriveDetail(customerID int, orderSearch string) (*domain.CustomerDetail, error)
}

// Confirmer é a capacidade de confirmação pedida ao chamador antes de uma
// exclusão. Injetada para que testes usem um stub determinístico e a
// superfície HTTP use uma implementação sempre-sim (a confirmação real
// acontece no cliente).
type Confirmer interface {
	Confirm(prompt string) bool
}

// AutoConfirm confirma toda exclusão
type AutoConfirm struct{}

func (AutoConfirm) Confirm(string) bool { return true }

// Service implementa Viewer sobre um RecordStore compartilhado
type Service struct {
	store           storing.RecordStore
	confirmer       Confirmer
	defaultPageSize int
}

// NewService cria o controlador de visões
func NewService(store storing.RecordStore, confirmer Confirmer, defaultPageSize int) Viewer {
	return &Service{
		store:           store,
		confirmer:       confirmer,
		defaultPageSize: defaultPageSize,
	}
}

// DeriveView processa um evento e rederiva a listagem na ordem fixa:
// (1) mutação, (2) filtro, (3) paginação. O estado devolvido carrega a
// página efetiva após o grampeamento. Uma exclusão que falha deixa o
// estado inalterado e propaga o erro; uma exclusão não confirmada é um
// no-op. Evento nil apenas rederiva a visão com o estado atual.
func (s *Service) DeriveView(state domain.ViewState, event Event) (domain.ViewState, *domain.CustomerTable, error) {
	if state.PageSize < 1 {
		state.PageSize = s.defaultPageSize
	}
	if state.Page < 1 {
		state.Page = 1
	}

	next, err := s.applyEvent(state, event)
	if err != nil {
		return state, nil, err
	}

	filtered := searching.Customers(s.store.Snapshot(), next.Search)
	visible, page := paginating.Customers(filtered, next.PageSize, next.Page)

	next.Page = page.EffectivePage

	table := &domain.CustomerTable{
		Customers:     visible,
		TotalMatches:  len(filtered),
		EffectivePage: page.EffectivePage,
		TotalPages:    page.TotalPages,
		Search:        next.Search,
		PageSize:      next.PageSize,
	}

	return next, table, nil
}

// applyEvent aplica a intenção ao estado e, para exclusões, à coleção.
// Trocar a busca ou o tamanho de página sempre volta para a página 1, para
// que um filtro novo nunca deixe a visão numa página obsoleta. Exclusões
// preservam busca e tamanho de página.
func (s *Service) applyEvent(state domain.ViewState, event Event) (domain.ViewState, error) {
	switch e := event.(type) {
	case nil:
		return state, nil

	case SetSearch:
		state.Search = e.Query
		state.Page = 1

	case SetPageSize:
		if e.Size > 0 {
			state.PageSize = e.Size
		}
		state.Page = 1

	case SetPage:
		if e.Page > 0 {
			state.Page = e.Page
		}

	case DeleteCustomer:
		if !s.confirmer.Confirm(fmt.Sprintf("Tem certeza que deseja excluir o cliente %d?", e.CustomerID)) {
			logrus.WithField("customer_id", e.CustomerID).Info("viewing: exclusão de cliente não confirmada")
			return state, nil
		}

		if err := s.store.DeleteCustomer(e.CustomerID); err != nil {
			return state, err
		}

		logrus.WithField("customer_id", e.CustomerID).Info("viewing: cliente excluído")

	case DeleteOrder:
		if !s.confirmer.Confirm(fmt.Sprintf("Excluir o pedido %s?", e.OrderID)) {
			logrus.WithFields(logrus.Fields{
				"customer_id": e.CustomerID,
				"order_id":    e.OrderID,
			}).Info("viewing: exclusão de pedido não confirmada")
			return state, nil
		}

		if _, err := s.store.DeleteOrder(e.CustomerID, e.OrderID); err != nil {
			return state, err
		}

		logrus.WithFields(logrus.Fields{
			"customer_id": e.CustomerID,
			"order_id":    e.OrderID,
		}).Info("viewing: pedido excluído")

	default:
		logrus.WithField("event", event.name()).Warn("viewing: evento desconhecido ignorado")
	}

	return state, nil
}

// DeriveDetail monta a visão de detalhes de um cliente: os pedidos
// filtrados pela busca da tabela de pedidos e a série mensal de comissões
// para o gráfico, independente da paginação da listagem.
func (s *Service) DeriveDetail(customerID int, orderSearch string) (*domain.CustomerDetail, error) {
	customer, ok := s.store.GetCustomer(customerID)
	if !ok {
		return nil, storing.NewCustomerError(storing.ErrCustomerNotFound, customerID,
			fmt.Sprintf("cliente %d não existe na coleção", customerID))
	}

	series, err := aggregating.SeriesForCustomer(customer, aggregating.FieldCommission)
	if err != nil {
		return nil, err
	}

	return &domain.CustomerDetail{
		Customer:      customer,
		Orders:        searching.Orders(customer.Orders, orderSearch),
		MonthlySeries: series,
		Search:        orderSearch,
	}, nil
}
