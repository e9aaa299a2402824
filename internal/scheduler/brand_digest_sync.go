package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/infrastructure/repository"
	"github.com/iqol/brand-pulse-api/internal/config"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/reporting"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

// BrandDigestSyncConfig representa a configuração do agendador de digests de marca
type BrandDigestSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BrandDigestSyncService consolida diariamente as estatísticas de cada marca
// em um snapshot, para que consultas históricas não precisem reagregar as
// métricas brutas.
type BrandDigestSyncService struct {
	scheduler           *gocron.Scheduler
	config              BrandDigestSyncConfig
	brandRepo           repository.BrandRepository
	metricRepo          repository.MetricRepository
	snapshotRepo        repository.BrandSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
}

// NewBrandDigestSyncService cria uma nova instância do serviço de digest de marcas
func NewBrandDigestSyncService(
	brandRepo repository.BrandRepository,
	metricRepo repository.MetricRepository,
	snapshotRepo repository.BrandSnapshotRepository,
	appConfig *config.Config,
) *BrandDigestSyncService {
	digestConfig := BrandDigestSyncConfig{
		CronSchedule: appConfig.DigestSync.CronSchedule,
		SyncEnabled:  appConfig.DigestSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"sync_enabled":  digestConfig.SyncEnabled,
	}).Info("Configuração do agendador de digest de marcas carregada")

	return &BrandDigestSyncService{
		scheduler:    scheduler,
		config:       digestConfig,
		brandRepo:    brandRepo,
		metricRepo:   metricRepo,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *BrandDigestSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Digest de marcas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de digest de marcas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllBrandDigests()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar digest de marcas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de digest de marcas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllBrandDigests consolida as estatísticas de todas as marcas em snapshots
func (s *BrandDigestSyncService) syncAllBrandDigests() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Digest de marcas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar identificador da execução do digest")
		return
	}

	s.syncMutex.Lock()
	s.lastRunID = runID
	s.syncMutex.Unlock()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando digest de marcas")

	brands, err := s.brandRepo.ListBrands()
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar marcas para o digest")
		return
	}

	if len(brands) == 0 {
		logger.Info("Nenhuma marca encontrada para o digest")
		return
	}

	metrics, err := s.metricRepo.ListAllOrdered()
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar métricas para o digest")
		return
	}

	snapshotDate := utils.Today()
	saved := 0

	for _, brand := range brands {
		stats := reporting.AggregateBrand(metrics, brand.ID)

		snapshot := &domain.BrandSnapshot{
			BrandID:      brand.ID,
			SnapshotDate: snapshotDate,
			Stats:        *stats,
			RunID:        runID,
		}

		if err := s.snapshotRepo.SaveOrUpdateSnapshot(snapshot); err != nil {
			logger.WithFields(logrus.Fields{
				"brand_id":   brand.ID,
				"brand_name": brand.Name,
				"error":      err.Error(),
			}).Error("Erro ao salvar snapshot da marca")
			continue
		}

		saved++
	}

	duration := time.Since(startTime)
	logger.WithFields(logrus.Fields{
		"duration": duration.String(),
		"brands":   len(brands),
		"saved":    saved,
	}).Info("Digest de marcas concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma execução do digest
func (s *BrandDigestSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Digest de marcas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando digest manual de marcas")
	go s.syncAllBrandDigests()
}

// GetStatus retorna o status atual do agendador. Os campos de execução são
// lidos sob o mutex porque o digest escreve neles em outra goroutine.
func (s *BrandDigestSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
