package stats

import (
	"context"

	statsdomain "github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats/domain"
	"github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats/statsclient"
	"github.com/vfg2006/customer-admin-api/internal/config"
)

// StatsIntegrator define as quatro operações de leitura do colaborador de
// estatísticas. Cada chamada é uma requisição síncrona ao endpoint HTTP
// configurado; falhas sobem para o chamador sem retry nem backoff.
type StatsIntegrator interface {
	GetDashboardStats(ctx context.Context) (*statsdomain.DashboardStats, error)
	GetProductStats(ctx context.Context) (*statsdomain.ProductStats, error)
	GetTopProducts(ctx context.Context, limit int) ([]statsdomain.TopProduct, error)
	GetRecentOrders(ctx context.Context, limit int) ([]statsdomain.RecentOrder, error)
}

type StatsService struct {
	cfg    *config.Config
	Client statsclient.Client
}

func New(cfg *config.Config, client statsclient.Client) StatsIntegrator {
	return &StatsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *StatsService) GetDashboardStats(ctx context.Context) (*statsdomain.DashboardStats, error) {
	return s.Client.GetDashboardStats(ctx)
}

func (s *StatsService) GetProductStats(ctx context.Context) (*statsdomain.ProductStats, error) {
	return s.Client.GetProductStats(ctx)
}

// GetTopProducts aplica o limite padrão configurado quando o chamador não informa um
func (s *StatsService) GetTopProducts(ctx context.Context, limit int) ([]statsdomain.TopProduct, error) {
	if limit <= 0 {
		limit = s.cfg.Stats.TopProductsLimit
	}
	return s.Client.GetTopProducts(ctx, limit)
}

// GetRecentOrders aplica o limite padrão configurado quando o chamador não informa um
func (s *StatsService) GetRecentOrders(ctx context.Context, limit int) ([]statsdomain.RecentOrder, error) {
	if limit <= 0 {
		limit = s.cfg.Stats.RecentOrdersLimit
	}
	return s.Client.GetRecentOrders(ctx, limit)
}
