package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vfg2006/customer-admin-api/internal/usecases/dashboarding"
	"github.com/vfg2006/customer-admin-api/pkg/apiErrors"
	"github.com/vfg2006/customer-admin-api/pkg/log"
)

// O dashboard não tenta de novo quando o upstream falha: cai para o
// último snapshot, marcando a resposta como obsoleta, ou devolve 502.
const staleHeader = "X-Stale-Data"

// GetDashboardStats retorna os números de topo do dashboard
func GetDashboardStats(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stats, err := service.GetDashboardStats(r.Context())
		if err != nil {
			if snapshot := service.Snapshot(); snapshot != nil && snapshot.DashboardStats != nil {
				logger.WithError(err).Warn("dashboard: upstream indisponível, servindo snapshot")
				writeStale(w, snapshot.DashboardStats)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Serviço de estatísticas indisponível", nil)
			return
		}

		writeJSON(w, logger, stats)
	})
}

// GetProductStats retorna o resumo do catálogo de produtos
func GetProductStats(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stats, err := service.GetProductStats(r.Context())
		if err != nil {
			if snapshot := service.Snapshot(); snapshot != nil && snapshot.ProductStats != nil {
				logger.WithError(err).Warn("dashboard: upstream indisponível, servindo snapshot")
				writeStale(w, snapshot.ProductStats)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Serviço de estatísticas indisponível", nil)
			return
		}

		writeJSON(w, logger, stats)
	})
}

// GetTopProducts retorna os produtos mais vendidos (limite padrão: 5)
func GetTopProducts(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		products, err := service.GetTopProducts(r.Context(), limit)
		if err != nil {
			if snapshot := service.Snapshot(); snapshot != nil && snapshot.TopProducts != nil {
				logger.WithError(err).Warn("dashboard: upstream indisponível, servindo snapshot")
				writeStale(w, snapshot.TopProducts)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Serviço de estatísticas indisponível", nil)
			return
		}

		writeJSON(w, logger, products)
	})
}

// GetRecentOrders retorna os pedidos recentes (limite padrão: 10)
func GetRecentOrders(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		orders, err := service.GetRecentOrders(r.Context(), limit)
		if err != nil {
			if snapshot := service.Snapshot(); snapshot != nil && snapshot.RecentOrders != nil {
				logger.WithError(err).Warn("dashboard: upstream indisponível, servindo snapshot")
				writeStale(w, snapshot.RecentOrders)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Serviço de estatísticas indisponível", nil)
			return
		}

		writeJSON(w, logger, orders)
	})
}

// GetDashboardSnapshot retorna a última leitura completa em cache
func GetDashboardSnapshot(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := service.Snapshot()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Nenhum snapshot do dashboard disponível ainda", nil)
			return
		}

		writeJSON(w, logger, snapshot)
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("dashboard: erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}

func writeStale(w http.ResponseWriter, payload any) {
	w.Header().Set(staleHeader, "true")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
