// Package aggregating reduz a coleção de pedidos de um cliente em uma
// série numérica de 12 posições, uma por mês do calendário, pronta para o
// gráfico de comissões da visão de detalhes.
package aggregating

import (
	"github.com/vfg2006/customer-admin-api/internal/domain"
	"github.com/vfg2006/customer-admin-api/pkg/utils"
)

// SeriesField escolhe o campo monetário somado em cada balde mensal
type SeriesField string

const (
	FieldCommission SeriesField = "commission"
	FieldAmount     SeriesField = "amount"
)

// MonthlySeries soma o campo escolhido por mês do calendário, indexado de
// janeiro a dezembro. Baldes sem pedidos ficam em zero. As datas são
// interpretadas como 2006-01-02 em UTC; uma data fora do formato falha
// com AggregationError embrulhando ErrUnparsableDate.
func MonthlySeries(orders []domain.Order, field SeriesField) ([]float64, error) {
	series := make([]float64, domain.MonthsInYear)

	for _, order := range orders {
		date, err := utils.ParseOrderDate(order.Date)
		if err != nil {
			return nil, &AggregationError{
				Err:     ErrUnparsableDate,
				OrderID: order.ID,
				Date:    order.Date,
			}
		}

		bucket := int(date.Month()) - 1

		switch field {
		case FieldAmount:
			series[bucket] += order.Amount
		default:
			series[bucket] += order.Commission
		}
	}

	for i := range series {
		series[i] = utils.RoundWithTwoDecimalPlace(series[i])
	}

	return series, nil
}

// SeriesForCustomer deriva a série do gráfico de um cliente. A série é
// calculada a partir dos pedidos atuais, de modo que exclusões refletem
// no gráfico. Quando a fonte de dados não forneceu lista de pedidos
// (Orders nil, diferente de uma coleção esvaziada por exclusões), cai
// para a série denormalizada fornecida por ela, se houver.
func SeriesForCustomer(customer domain.Customer, field SeriesField) ([]float64, error) {
	if customer.Orders == nil && len(customer.Graph) == domain.MonthsInYear {
		graph := make([]float64, domain.MonthsInYear)
		copy(graph, customer.Graph)
		return graph, nil
	}

	return MonthlySeries(customer.Orders, field)
}
