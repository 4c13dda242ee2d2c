package handler

import (
	"net/http"

	"github.com/vfg2006/customer-admin-api/internal/api/handler/router"
	"github.com/vfg2006/customer-admin-api/internal/config"
	"github.com/vfg2006/customer-admin-api/internal/usecases/dashboarding"
	"github.com/vfg2006/customer-admin-api/internal/usecases/viewing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Customers(service viewing.Viewer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service, cfg),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodGet,
			Handler: GetCustomerDetails(service),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCustomer(service, cfg),
		},
		{
			Path:    "/v1/customers/:id/orders/:order_id",
			Method:  http.MethodDelete,
			Handler: DeleteOrder(service),
		},
	}
}

func Dashboard(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/stats",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(service),
		},
		{
			Path:    "/v1/products/stats",
			Method:  http.MethodGet,
			Handler: GetProductStats(service),
		},
		{
			Path:    "/v1/products/top",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/v1/orders/recent",
			Method:  http.MethodGet,
			Handler: GetRecentOrders(service),
		},
		{
			Path:    "/v1/dashboard/snapshot",
			Method:  http.MethodGet,
			Handler: GetDashboardSnapshot(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
