package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// SnapshotRefresher recarrega o snapshot das planilhas de origem
type SnapshotRefresher interface {
	Refresh(ctx context.Context) (*domain.Snapshot, error)
}

// SheetSyncConfig representa a configuração do agendador de atualização
type SheetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SheetSyncService gerencia o agendamento da atualização do snapshot das
// planilhas, além da execução manual via API.
type SheetSyncService struct {
	scheduler *gocron.Scheduler
	config    SheetSyncConfig
	store     SnapshotRefresher

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewSheetSyncService cria uma nova instância do serviço de sincronização
func NewSheetSyncService(store SnapshotRefresher, appConfig *config.Config) *SheetSyncService {
	syncConfig := SheetSyncConfig{
		CronSchedule: appConfig.SheetSync.CronSchedule,
		SyncEnabled:  appConfig.SheetSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização das planilhas carregada")

	return &SheetSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		store:     store,
	}
}

// Start inicia o agendador
func (s *SheetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização agendada das planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização das planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSheets(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a atualização das planilhas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização das planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma atualização fora do agendamento
func (s *SheetSyncService) TriggerManualSync() {
	go s.syncSheets(context.Background())
}

// GetStatus retorna o estado corrente do agendador
func (s *SheetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled": s.config.SyncEnabled,
		"cron":    s.config.CronSchedule,
		"running": s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}
	if s.lastSyncError != "" {
		status["last_sync_error"] = s.lastSyncError
	}

	return status
}

// syncSheets recarrega o snapshot, garantindo uma execução por vez
func (s *SheetSyncService) syncSheets(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização das planilhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	snapshot, err := s.store.Refresh(ctx)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar o snapshot das planilhas")
		return
	}

	logrus.WithField("snapshot_id", snapshot.ID).Info("Atualização das planilhas concluída")
}
