package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	statsdomain "github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats/domain"
	"github.com/vfg2006/customer-admin-api/internal/config"
)

// recordingClient guarda o último limite recebido
type recordingClient struct {
	lastLimit int
}

func (c *recordingClient) GetDashboardStats(ctx context.Context) (*statsdomain.DashboardStats, error) {
	return &statsdomain.DashboardStats{}, nil
}

func (c *recordingClient) GetProductStats(ctx context.Context) (*statsdomain.ProductStats, error) {
	return &statsdomain.ProductStats{}, nil
}

func (c *recordingClient) GetTopProducts(ctx context.Context, limit int) ([]statsdomain.TopProduct, error) {
	c.lastLimit = limit
	return nil, nil
}

func (c *recordingClient) GetRecentOrders(ctx context.Context, limit int) ([]statsdomain.RecentOrder, error) {
	c.lastLimit = limit
	return nil, nil
}

func TestStatsService_DefaultLimits(t *testing.T) {
	cfg := &config.Config{
		Stats: config.Stats{
			TopProductsLimit:  5,
			RecentOrdersLimit: 10,
		},
	}

	tests := []struct {
		name      string
		call      func(service StatsIntegrator) error
		wantLimit int
	}{
		{
			name: "Limite informado é repassado ao cliente",
			call: func(service StatsIntegrator) error {
				_, err := service.GetTopProducts(context.Background(), 3)
				return err
			},
			wantLimit: 3,
		},
		{
			name: "Limite zerado cai para o padrão de produtos",
			call: func(service StatsIntegrator) error {
				_, err := service.GetTopProducts(context.Background(), 0)
				return err
			},
			wantLimit: 5,
		},
		{
			name: "Limite negativo cai para o padrão de pedidos",
			call: func(service StatsIntegrator) error {
				_, err := service.GetRecentOrders(context.Background(), -1)
				return err
			},
			wantLimit: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &recordingClient{}
			service := New(cfg, client)

			err := tt.call(service)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantLimit, client.lastLimit)
		})
	}
}
