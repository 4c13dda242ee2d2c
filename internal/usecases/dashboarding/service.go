// Package dashboarding expõe as estatísticas do dashboard vindas do
// colaborador externo. Cada falha é registrada e propagada ao chamador,
// que decide entre mostrar um dashboard vazio ou o último snapshot; este
// serviço não faz retry de buscas falhas.
package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats"
	statsdomain "github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats/domain"
	"github.com/vfg2006/customer-admin-api/internal/config"
)

// DashboardService é a interface consumida pelos handlers do dashboard
type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*statsdomain.DashboardStats, error)
	GetProductStats(ctx context.Context) (*statsdomain.ProductStats, error)
	GetTopProducts(ctx context.Context, limit int) ([]statsdomain.TopProduct, error)
	GetRecentOrders(ctx context.Context, limit int) ([]statsdomain.RecentOrder, error)

	// Snapshot retorna a última leitura completa bem-sucedida, ou nil
	Snapshot() *statsdomain.Snapshot
	// RefreshSnapshot refaz a leitura completa e guarda o resultado
	RefreshSnapshot(ctx context.Context, runID string) error
}

type Service struct {
	cfg        *config.Config
	integrator stats.StatsIntegrator

	mu       sync.RWMutex
	snapshot *statsdomain.Snapshot
}

// NewService cria o serviço de estatísticas do dashboard
func NewService(cfg *config.Config, integrator stats.StatsIntegrator) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

func (s *Service) GetDashboardStats(ctx context.Context) (*statsdomain.DashboardStats, error) {
	dashboardStats, err := s.integrator.GetDashboardStats(ctx)
	if err != nil {
		logrus.WithError(err).Error("dashboarding: erro ao buscar estatísticas do dashboard")
		return nil, err
	}
	return dashboardStats, nil
}

func (s *Service) GetProductStats(ctx context.Context) (*statsdomain.ProductStats, error) {
	productStats, err := s.integrator.GetProductStats(ctx)
	if err != nil {
		logrus.WithError(err).Error("dashboarding: erro ao buscar estatísticas de produtos")
		return nil, err
	}
	return productStats, nil
}

func (s *Service) GetTopProducts(ctx context.Context, limit int) ([]statsdomain.TopProduct, error) {
	products, err := s.integrator.GetTopProducts(ctx, limit)
	if err != nil {
		logrus.WithError(err).WithField("limit", limit).Error("dashboarding: erro ao buscar produtos mais vendidos")
		return nil, err
	}
	return products, nil
}

func (s *Service) GetRecentOrders(ctx context.Context, limit int) ([]statsdomain.RecentOrder, error) {
	orders, err := s.integrator.GetRecentOrders(ctx, limit)
	if err != nil {
		logrus.WithError(err).WithField("limit", limit).Error("dashboarding: erro ao buscar pedidos recentes")
		return nil, err
	}
	return orders, nil
}

// Snapshot retorna a última leitura completa bem-sucedida do upstream
func (s *Service) Snapshot() *statsdomain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// RefreshSnapshot busca as quatro leituras do colaborador e substitui o
// snapshot em memória. Qualquer falha aborta a atualização inteira, para
// que o snapshot nunca misture leituras de execuções diferentes.
func (s *Service) RefreshSnapshot(ctx context.Context, runID string) error {
	dashboardStats, err := s.GetDashboardStats(ctx)
	if err != nil {
		return err
	}

	productStats, err := s.GetProductStats(ctx)
	if err != nil {
		return err
	}

	topProducts, err := s.GetTopProducts(ctx, s.cfg.Stats.TopProductsLimit)
	if err != nil {
		return err
	}

	recentOrders, err := s.GetRecentOrders(ctx, s.cfg.Stats.RecentOrdersLimit)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshot = &statsdomain.Snapshot{
		DashboardStats: dashboardStats,
		ProductStats:   productStats,
		TopProducts:    topProducts,
		RecentOrders:   recentOrders,
		RefreshedAt:    time.Now(),
		RunID:          runID,
	}
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"run_id":       runID,
		"top_products": len(topProducts),
		"recent":       len(recentOrders),
	}).Info("dashboarding: snapshot do dashboard atualizado")

	return nil
}
