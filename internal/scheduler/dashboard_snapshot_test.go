package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/customer-admin-api/internal/config"
)

// fakeRefresher conta as chamadas e devolve o erro configurado
type fakeRefresher struct {
	calls int32
	err   error
}

func (f *fakeRefresher) RefreshSnapshot(ctx context.Context, runID string) error {
	atomic.AddInt32(&f.calls, 1)
	return f.err
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		DashboardSnapshotSync: config.DashboardSnapshotSync{
			CronSchedule: "*/15 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestDashboardSnapshotService_StartDisabled(t *testing.T) {
	refresher := &fakeRefresher{}
	service := NewDashboardSnapshotService(refresher, newTestConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&refresher.calls))
}

func TestDashboardSnapshotService_RefreshDashboardSnapshot(t *testing.T) {
	tests := []struct {
		name      string
		refresher *fakeRefresher
		wantErr   bool
		wantCalls int32
	}{
		{
			name:      "Atualização bem-sucedida registra os horários",
			refresher: &fakeRefresher{},
			wantCalls: 1,
		},
		{
			name:      "Falha do refresher é propagada",
			refresher: &fakeRefresher{err: errors.New("upstream fora do ar")},
			wantErr:   true,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewDashboardSnapshotService(tt.refresher, newTestConfig(true))

			err := service.RefreshDashboardSnapshot(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&tt.refresher.calls))

			// Mesmo em falha a execução é registrada para o endpoint de status
			startedAt, completedAt := service.LastSync()
			assert.False(t, startedAt.IsZero())
			assert.False(t, completedAt.IsZero())
			assert.True(t, !completedAt.Before(startedAt))
		})
	}
}

func TestDashboardSnapshotService_RunIDIsPassedToRefresher(t *testing.T) {
	var gotRunID string

	service := NewDashboardSnapshotService(refresherFunc(func(ctx context.Context, runID string) error {
		gotRunID = runID
		return nil
	}), newTestConfig(true))

	err := service.RefreshDashboardSnapshot(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, gotRunID)
}

type refresherFunc func(ctx context.Context, runID string) error

func (f refresherFunc) RefreshSnapshot(ctx context.Context, runID string) error {
	return f(ctx, runID)
}
