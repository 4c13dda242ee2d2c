package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/customer-admin-api/internal/domain"
	"github.com/vfg2006/customer-admin-api/internal/usecases/aggregating"
	"github.com/vfg2006/customer-admin-api/internal/usecases/storing"
	"github.com/vfg2006/customer-admin-api/internal/usecases/viewing"
	"github.com/vfg2006/customer-admin-api/pkg/apiErrors"
	"github.com/vfg2006/customer-admin-api/pkg/log"
)

// GetCustomerDetails retorna a visão de detalhes de um cliente: pedidos
// filtrados pela busca e a série mensal de comissões para o gráfico
func GetCustomerDetails(service viewing.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		search := r.URL.Query().Get("search")

		detail, err := service.DeriveDetail(id, search)
		if err != nil {
			writeDetailError(w, logger, id, err)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id": id,
			"orders":      len(detail.Orders),
		}).Info("customer-details: detalhes derivados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logger.WithError(err).Error("customer-details: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// DeleteOrder remove um pedido do cliente dono e retorna a visão de
// detalhes rederivada, com contadores e série mensal já recalculados
func DeleteOrder(service viewing.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())

		id, err := strconv.Atoi(params.ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		orderID := params.ByName("order_id")
		if orderID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do pedido não fornecido", nil)
			return
		}

		search := r.URL.Query().Get("search")

		// A exclusão passa pelo ViewController para respeitar a ordem de
		// rederivação; o estado da listagem não interessa aqui
		_, _, err = service.DeriveView(domain.ViewState{}, viewing.DeleteOrder{
			CustomerID: id,
			OrderID:    orderID,
		})
		if err != nil {
			writeDetailError(w, logger, id, err)
			return
		}

		detail, err := service.DeriveDetail(id, search)
		if err != nil {
			writeDetailError(w, logger, id, err)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id": id,
			"order_id":    orderID,
		}).Info("customer-details: pedido excluído com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logger.WithError(err).Error("customer-details: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func writeDetailError(w http.ResponseWriter, logger log.Logger, customerID int, err error) {
	if errors.Is(err, storing.ErrCustomerNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrCustomerNotFound, "Cliente não encontrado", nil)
		return
	}

	if errors.Is(err, aggregating.ErrUnparsableDate) {
		logger.WithError(err).WithField("customer_id", customerID).Error("customer-details: data de pedido inválida na agregação")
		apiErrors.WriteError(w, apiErrors.ErrAggregationFailed, err.Error(), nil)
		return
	}

	logger.WithError(err).WithField("customer_id", customerID).Error("customer-details: erro ao derivar detalhes")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar detalhes do cliente", nil)
}
