package statsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/customer-admin-api/internal/config"
)

func newTestClient(serverURL string) Client {
	return NewClient(&config.Config{
		Stats: config.Stats{
			URL:            serverURL + "/admin",
			TimeoutSeconds: 2,
		},
	})
}

func TestStatsClient_GetDashboardStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/dashboard/stats", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total_customers": 500, "new_signups": 12, "total_orders": 1200, "total_revenue": 45000.5}`))
	}))
	defer server.Close()

	stats, err := newTestClient(server.URL).GetDashboardStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 500, stats.TotalCustomers)
	assert.Equal(t, 12, stats.NewSignups)
	assert.Equal(t, 45000.5, stats.TotalRevenue)
}

func TestStatsClient_GetTopProductsSendsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/products/top", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "P1", "name": "Produto A", "units_sold": 40, "revenue": 1200.0}]`))
	}))
	defer server.Close()

	products, err := newTestClient(server.URL).GetTopProducts(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Produto A", products[0].Name)
}

func TestStatsClient_GetRecentOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/orders/recent", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "ORD-001", "customer_name": "Maria Souza", "status": "delivered"}]`))
	}))
	defer server.Close()

	orders, err := newTestClient(server.URL).GetRecentOrders(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "delivered", orders[0].Status)
}

func TestStatsClient_NonOKStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	stats, err := newTestClient(server.URL).GetDashboardStats(context.Background())

	assert.Nil(t, stats)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestStatsClient_ServerDownFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	stats, err := newTestClient(server.URL).GetDashboardStats(context.Background())

	assert.Nil(t, stats)
	assert.Error(t, err)
}
