package dashboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	statsdomain "github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats/domain"
	"github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats/mocks"
	"github.com/vfg2006/customer-admin-api/internal/config"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Stats: config.Stats{
			TopProductsLimit:  5,
			RecentOrdersLimit: 10,
		},
	}
}

func TestService_GetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockStatsIntegrator(ctrl)
	service := NewService(testConfig(), mockIntegrator)

	t.Run("Sucesso repassa o resultado do colaborador", func(t *testing.T) {
		expected := &statsdomain.DashboardStats{TotalCustomers: 500, TotalOrders: 1200}

		mockIntegrator.EXPECT().
			GetDashboardStats(gomock.Any()).
			Return(expected, nil)

		stats, err := service.GetDashboardStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, expected, stats)
	})

	t.Run("Falha é propagada sem retry", func(t *testing.T) {
		upstreamErr := errors.New("upstream indisponível")

		// Uma única chamada: o serviço não tenta de novo
		mockIntegrator.EXPECT().
			GetDashboardStats(gomock.Any()).
			Return(nil, upstreamErr).
			Times(1)

		stats, err := service.GetDashboardStats(context.Background())

		assert.Nil(t, stats)
		assert.ErrorIs(t, err, upstreamErr)
	})
}

func TestService_RefreshSnapshot(t *testing.T) {
	dashboardStats := &statsdomain.DashboardStats{TotalCustomers: 500}
	productStats := &statsdomain.ProductStats{}
	topProducts := []statsdomain.TopProduct{{Name: "Produto A"}}
	recentOrders := []statsdomain.RecentOrder{{ID: "ORD-001"}}

	tests := []struct {
		name     string
		setup    func(m *mocks.MockStatsIntegrator)
		wantErr  bool
		validate func(t *testing.T, service *Service)
	}{
		{
			name: "Atualização completa guarda o snapshot",
			setup: func(m *mocks.MockStatsIntegrator) {
				m.EXPECT().GetDashboardStats(gomock.Any()).Return(dashboardStats, nil)
				m.EXPECT().GetProductStats(gomock.Any()).Return(productStats, nil)
				m.EXPECT().GetTopProducts(gomock.Any(), 5).Return(topProducts, nil)
				m.EXPECT().GetRecentOrders(gomock.Any(), 10).Return(recentOrders, nil)
			},
			validate: func(t *testing.T, service *Service) {
				snapshot := service.Snapshot()
				assert.NotNil(t, snapshot)
				assert.Equal(t, dashboardStats, snapshot.DashboardStats)
				assert.Equal(t, topProducts, snapshot.TopProducts)
				assert.Equal(t, "run-123", snapshot.RunID)
				assert.False(t, snapshot.RefreshedAt.IsZero())
			},
		},
		{
			name: "Falha em qualquer leitura aborta a atualização inteira",
			setup: func(m *mocks.MockStatsIntegrator) {
				m.EXPECT().GetDashboardStats(gomock.Any()).Return(dashboardStats, nil)
				m.EXPECT().GetProductStats(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
			validate: func(t *testing.T, service *Service) {
				// O snapshot nunca mistura leituras de execuções diferentes
				assert.Nil(t, service.Snapshot())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIntegrator := mocks.NewMockStatsIntegrator(ctrl)
			tt.setup(mockIntegrator)

			service := NewService(testConfig(), mockIntegrator)

			err := service.RefreshSnapshot(context.Background(), "run-123")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			tt.validate(t, service)
		})
	}
}
