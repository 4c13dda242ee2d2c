// Package scheduler contém os serviços de agendamento de jobs em background
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-admin-api/internal/config"
	"github.com/vfg2006/customer-admin-api/pkg/utils"
)

// SnapshotRefresher é a parte do serviço de dashboard que o job usa
type SnapshotRefresher interface {
	RefreshSnapshot(ctx context.Context, runID string) error
}

type DashboardSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardSnapshotService atualiza periodicamente o snapshot das
// estatísticas do dashboard, para que o painel tenha dados (ainda que
// obsoletos) quando o upstream falhar
type DashboardSnapshotService struct {
	scheduler           *gocron.Scheduler
	refresher           SnapshotRefresher
	config              DashboardSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardSnapshotService(refresher SnapshotRefresher, cfg *config.Config) *DashboardSnapshotService {
	snapshotConfig := DashboardSnapshotConfig{
		CronSchedule: cfg.DashboardSnapshotSync.CronSchedule,
		Enabled:      cfg.DashboardSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshot do dashboard carregada")

	return &DashboardSnapshotService{
		scheduler: scheduler,
		refresher: refresher,
		config:    snapshotConfig,
	}
}

func (s *DashboardSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDashboardSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do snapshot do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do snapshot do dashboard: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDashboardSnapshot executa uma atualização imediata do snapshot.
// Execuções concorrentes viram no-op enquanto uma ainda está em andamento.
func (s *DashboardSnapshotService) RefreshDashboardSnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Atualização do snapshot do dashboard já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		runID = "unknown"
	}

	logrus.WithField("run_id", runID).Info("Iniciando atualização do snapshot do dashboard")

	if err := s.refresher.RefreshSnapshot(ctx, runID); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Error("Erro ao atualizar snapshot do dashboard")
		return err
	}

	logrus.WithField("run_id", runID).Info("Atualização do snapshot do dashboard concluída")

	return nil
}

// LastSync expõe os horários da última execução para o endpoint de status
func (s *DashboardSnapshotService) LastSync() (startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}

// TriggerManualSync dispara uma atualização imediata em background,
// usada pelo endpoint administrativo de cron
func (s *DashboardSnapshotService) TriggerManualSync() {
	go func() {
		if err := s.RefreshDashboardSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do snapshot do dashboard")
		}
	}()
}
