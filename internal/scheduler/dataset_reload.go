package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/usecases/reporting"
)

// DatasetReloadConfig representa a configuração do agendador de recarga do dataset
type DatasetReloadConfig struct {
	CronSchedule  string
	ReloadEnabled bool
}

// DatasetReloadService gerencia o agendamento e a execução da recarga do dataset
type DatasetReloadService struct {
	scheduler *gocron.Scheduler
	config    DatasetReloadConfig
	reloader  reporting.Reloader

	reloadMutex           sync.Mutex
	reloadRunning         bool
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastReloadError       string
	lastDatasetID         string
}

// NewDatasetReloadService cria o agendador de recarga a partir da configuração global
func NewDatasetReloadService(reloader reporting.Reloader, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule:  appConfig.DatasetReload.CronSchedule,
		ReloadEnabled: appConfig.DatasetReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  reloadConfig.CronSchedule,
		"reload_enabled": reloadConfig.ReloadEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    reloadConfig,
		reloader:  reloader,
	}
}

// Start agenda a recarga periódica; não faz nada quando desabilitada
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.ReloadEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if s.tryStart() {
			s.reload(ctx)
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualReload dispara uma recarga em background.
// Retorna false quando já existe uma recarga em andamento.
func (s *DatasetReloadService) TriggerManualReload(ctx context.Context) bool {
	if !s.tryStart() {
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual do dataset")
	go s.reload(ctx)
	return true
}

// tryStart marca a recarga como em andamento se nenhuma outra estiver rodando
func (s *DatasetReloadService) tryStart() bool {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	if s.reloadRunning {
		return false
	}

	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	return true
}

func (s *DatasetReloadService) reload(ctx context.Context) {
	startTime := time.Now()

	info, err := s.reloader.Reload(ctx)

	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	s.reloadRunning = false
	s.lastReloadCompletedAt = time.Now()

	if err != nil {
		s.lastReloadError = err.Error()
		return
	}

	s.lastReloadError = ""
	s.lastDatasetID = info.ID

	logrus.WithFields(logrus.Fields{
		"duration":   time.Since(startTime).String(),
		"dataset_id": info.ID,
	}).Info("Recarga do dataset concluída")
}

// Running indica se existe uma recarga em andamento
func (s *DatasetReloadService) Running() bool {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	return s.reloadRunning
}

// GetStatus retorna o status atual da recarga
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	return map[string]any{
		"reload_running":           s.reloadRunning,
		"reload_cron":              s.config.CronSchedule,
		"reload_enabled":           s.config.ReloadEnabled,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"last_reload_error":        s.lastReloadError,
		"last_dataset_id":          s.lastDatasetID,
	}
}
