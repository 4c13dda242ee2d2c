package aggregating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/customer-admin-api/internal/domain"
)

func TestMonthlySeries(t *testing.T) {
	tests := []struct {
		name    string
		orders  []domain.Order
		field   SeriesField
		want    []float64
		wantErr error
	}{
		{
			name:   "Coleção vazia produz série zerada",
			orders: nil,
			field:  FieldCommission,
			want:   make([]float64, domain.MonthsInYear),
		},
		{
			name: "Pedidos do mesmo mês somam no mesmo balde",
			orders: []domain.Order{
				{ID: "ORD-001", Date: "2024-03-10", Commission: 10.0},
				{ID: "ORD-002", Date: "2024-03-25", Commission: 5.5},
				{ID: "ORD-003", Date: "2024-11-01", Commission: 2.0},
			},
			field: FieldCommission,
			want:  []float64{0, 0, 15.5, 0, 0, 0, 0, 0, 0, 0, 2.0, 0},
		},
		{
			name: "Anos diferentes caem no mesmo balde do calendário",
			orders: []domain.Order{
				{ID: "ORD-001", Date: "2023-06-10", Commission: 1.0},
				{ID: "ORD-002", Date: "2024-06-20", Commission: 2.0},
			},
			field: FieldCommission,
			want:  []float64{0, 0, 0, 0, 0, 3.0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "Campo de valor soma o montante em vez da comissão",
			orders: []domain.Order{
				{ID: "ORD-001", Date: "2024-01-05", Items: 2, Amount: 120.0, Commission: 12.0},
			},
			field: FieldAmount,
			want:  []float64{120.0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "Somas são arredondadas para duas casas decimais",
			orders: []domain.Order{
				{ID: "ORD-001", Date: "2024-02-01", Commission: 0.115},
				{ID: "ORD-002", Date: "2024-02-02", Commission: 0.115},
			},
			field: FieldCommission,
			want:  []float64{0, 0.23, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "Data fora do formato falha com ErrUnparsableDate",
			orders: []domain.Order{
				{ID: "ORD-001", Date: "15/01/2024", Commission: 10.0},
			},
			field:   FieldCommission,
			wantErr: ErrUnparsableDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlySeries(tt.orders, tt.field)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				var aggErr *AggregationError
				assert.True(t, errors.As(err, &aggErr))
				assert.Equal(t, "ORD-001", aggErr.OrderID)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, domain.MonthsInYear)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeriesForCustomer(t *testing.T) {
	denormalized := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	tests := []struct {
		name     string
		customer domain.Customer
		want     []float64
	}{
		{
			name: "Série calculada a partir dos pedidos quando presentes",
			customer: domain.Customer{
				ID: 1,
				Orders: []domain.Order{
					{ID: "ORD-001", Date: "2024-04-10", Commission: 7.0},
				},
				Graph: denormalized,
			},
			want: []float64{0, 0, 0, 7.0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "Sem lista de pedidos cai para a série denormalizada",
			customer: domain.Customer{
				ID:    2,
				Graph: denormalized,
			},
			want: denormalized,
		},
		{
			name: "Coleção esvaziada por exclusões não usa a série denormalizada",
			customer: domain.Customer{
				ID:     3,
				Orders: []domain.Order{},
				Graph:  denormalized,
			},
			want: make([]float64, domain.MonthsInYear),
		},
		{
			name: "Sem pedidos e sem série denormalizada produz série zerada",
			customer: domain.Customer{
				ID: 4,
			},
			want: make([]float64, domain.MonthsInYear),
		},
		{
			name: "Série denormalizada com tamanho errado é ignorada",
			customer: domain.Customer{
				ID:    5,
				Graph: []float64{1, 2, 3},
			},
			want: make([]float64, domain.MonthsInYear),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeriesForCustomer(tt.customer, FieldCommission)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeriesForCustomer_FallbackIsACopy(t *testing.T) {
	graph := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	customer := domain.Customer{ID: 1, Graph: graph}

	got, err := SeriesForCustomer(customer, FieldCommission)
	assert.NoError(t, err)

	got[0] = 999.0
	assert.Equal(t, 1.0, graph[0])
}
