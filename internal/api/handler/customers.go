package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/customer-admin-api/internal/config"
	"github.com/vfg2006/customer-admin-api/internal/domain"
	"github.com/vfg2006/customer-admin-api/internal/usecases/storing"
	"github.com/vfg2006/customer-admin-api/internal/usecases/viewing"
	"github.com/vfg2006/customer-admin-api/pkg/apiErrors"
	"github.com/vfg2006/customer-admin-api/pkg/log"
)

// viewStateFromRequest monta o ViewState a partir dos parâmetros de
// consulta. O tamanho de página é limitado ao máximo configurado; valores
// ausentes ou inválidos caem nos padrões do ViewController.
func viewStateFromRequest(r *http.Request, cfg *config.Config) domain.ViewState {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))

	if cfg.Pagination.MaxPageSize > 0 && pageSize > cfg.Pagination.MaxPageSize {
		pageSize = cfg.Pagination.MaxPageSize
	}

	return domain.ViewState{
		Search:   query.Get("search"),
		PageSize: pageSize,
		Page:     page,
	}
}

// ListCustomers deriva e retorna a listagem filtrada e paginada de clientes
func ListCustomers(service viewing.Viewer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		state := viewStateFromRequest(r, cfg)

		_, table, err := service.DeriveView(state, nil)
		if err != nil {
			logger.WithError(err).Error("customers: erro ao derivar a listagem")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a listagem de clientes", nil)
			return
		}

		logger.WithFields(log.Fields{
			"search":         table.Search,
			"effective_page": table.EffectivePage,
			"total_pages":    table.TotalPages,
			"visible":        len(table.Customers),
		}).Info("customers: listagem derivada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(table); err != nil {
			logger.WithError(err).Error("customers: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// DeleteCustomer remove um cliente e retorna a listagem rederivada.
// A busca e o tamanho de página da requisição são preservados; a página
// pode ser regrampeada se o registro excluído era o único da última página.
func DeleteCustomer(service viewing.Viewer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		state := viewStateFromRequest(r, cfg)

		_, table, err := service.DeriveView(state, viewing.DeleteCustomer{CustomerID: id})
		if err != nil {
			if errors.Is(err, storing.ErrCustomerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCustomerNotFound, "Cliente não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("customer_id", id).Error("customers: erro ao excluir cliente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao excluir cliente", nil)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id":    id,
			"effective_page": table.EffectivePage,
			"total_pages":    table.TotalPages,
		}).Info("customers: cliente excluído com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(table); err != nil {
			logger.WithError(err).Error("customers: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
