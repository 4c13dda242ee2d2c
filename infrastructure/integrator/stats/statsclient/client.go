package statsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"
	statsdomain "github.com/vfg2006/customer-admin-api/infrastructure/integrator/stats/domain"
	"github.com/vfg2006/customer-admin-api/internal/config"
)

// Client fala com os endpoints administrativos do serviço de estatísticas
type Client interface {
	GetDashboardStats(ctx context.Context) (*statsdomain.DashboardStats, error)
	GetProductStats(ctx context.Context) (*statsdomain.ProductStats, error)
	GetTopProducts(ctx context.Context, limit int) ([]statsdomain.TopProduct, error)
	GetRecentOrders(ctx context.Context, limit int) ([]statsdomain.RecentOrder, error)
}

type StatsClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente de estatísticas
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Stats.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &StatsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

func (c *StatsClient) GetDashboardStats(ctx context.Context) (*statsdomain.DashboardStats, error) {
	var stats statsdomain.DashboardStats
	if err := c.get(ctx, "/dashboard/stats", nil, &stats); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar estatísticas do dashboard")
	}
	return &stats, nil
}

func (c *StatsClient) GetProductStats(ctx context.Context) (*statsdomain.ProductStats, error) {
	var stats statsdomain.ProductStats
	if err := c.get(ctx, "/products/stats", nil, &stats); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar estatísticas de produtos")
	}
	return &stats, nil
}

func (c *StatsClient) GetTopProducts(ctx context.Context, limit int) ([]statsdomain.TopProduct, error) {
	var products []statsdomain.TopProduct

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	if err := c.get(ctx, "/products/top", params, &products); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produtos mais vendidos")
	}
	return products, nil
}

func (c *StatsClient) GetRecentOrders(ctx context.Context, limit int) ([]statsdomain.RecentOrder, error) {
	var orders []statsdomain.RecentOrder

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	if err := c.get(ctx, "/orders/recent", params, &orders); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedidos recentes")
	}
	return orders, nil
}

// get executa uma requisição GET contra o serviço de estatísticas e
// decodifica a resposta JSON em out
func (c *StatsClient) get(ctx context.Context, endpointPath string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.config.Stats.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	if params != nil {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resposta inesperada do serviço de estatísticas: %s: %s", resp.Status, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
