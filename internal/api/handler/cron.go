package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-admin-api/internal/scheduler"
	"github.com/vfg2006/customer-admin-api/pkg/apiErrors"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeDashboardSnapshot = "dashboard-snapshot"
)

// CronJobServices contém os serviços de cron para execução manual
type CronJobServices struct {
	DashboardSnapshotService *scheduler.DashboardSnapshotService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDashboardSnapshot:
			if services.DashboardSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot do dashboard não disponível", nil)
				return
			}
			services.DashboardSnapshotService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard-snapshot", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron: execução manual disparada")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.DashboardSnapshotService != nil {
			startedAt, completedAt := services.DashboardSnapshotService.LastSync()
			status[CronJobTypeDashboardSnapshot] = map[string]any{
				"last_started_at":   formatSyncTime(startedAt),
				"last_completed_at": formatSyncTime(completedAt),
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func formatSyncTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
