package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/iqol/brand-pulse-api/infrastructure/repository/mocks"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

func TestSyncAllBrandDigests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brandRepo := mocks.NewMockBrandRepository(ctrl)
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	snapshotRepo := mocks.NewMockBrandSnapshotRepository(ctrl)

	service := &BrandDigestSyncService{
		brandRepo:    brandRepo,
		metricRepo:   metricRepo,
		snapshotRepo: snapshotRepo,
	}

	brandRepo.EXPECT().ListBrands().Return([]*domain.Brand{
		{ID: 1, Name: "Marca A"},
		{ID: 2, Name: "Marca B"},
	}, nil)

	metricRepo.EXPECT().ListAllOrdered().Return([]*domain.DailyMetric{
		{ID: 2, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 150},
		{ID: 1, BrandID: 1, Date: "2026-08-27", WebsiteVisits: 100},
		{ID: 3, BrandID: 2, Date: "2026-08-28", WebsiteVisits: 40},
	}, nil)

	saved := make(map[int]*domain.BrandSnapshot)
	snapshotRepo.EXPECT().
		SaveOrUpdateSnapshot(gomock.Any()).
		Times(2).
		DoAndReturn(func(snapshot *domain.BrandSnapshot) error {
			saved[snapshot.BrandID] = snapshot
			return nil
		})

	service.syncAllBrandDigests()

	assert.Len(t, saved, 2)

	// Marca A tem dois lançamentos: valores do mais recente e variação de 50%
	assert.Equal(t, 150, saved[1].Stats.WebsiteVisits)
	assert.Equal(t, 50, saved[1].Stats.WebsiteChange)

	// Marca B tem lançamento único: variação zerada
	assert.Equal(t, 40, saved[2].Stats.WebsiteVisits)
	assert.Equal(t, 0, saved[2].Stats.WebsiteChange)

	// Snapshots da mesma execução compartilham o run_id e a data de hoje
	assert.NotEmpty(t, saved[1].RunID)
	assert.Equal(t, saved[1].RunID, saved[2].RunID)
	assert.Equal(t, utils.Today(), saved[1].SnapshotDate)

	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.Equal(t, saved[1].RunID, service.lastRunID)
}

func TestGetStatusReportsLastRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brandRepo := mocks.NewMockBrandRepository(ctrl)
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	snapshotRepo := mocks.NewMockBrandSnapshotRepository(ctrl)

	service := &BrandDigestSyncService{
		config:       BrandDigestSyncConfig{CronSchedule: "0 3 * * *", SyncEnabled: true},
		brandRepo:    brandRepo,
		metricRepo:   metricRepo,
		snapshotRepo: snapshotRepo,
	}

	brandRepo.EXPECT().ListBrands().Return([]*domain.Brand{{ID: 1, Name: "Marca A"}}, nil)
	metricRepo.EXPECT().ListAllOrdered().Return([]*domain.DailyMetric{
		{ID: 1, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 100},
	}, nil)
	snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(nil)

	service.syncAllBrandDigests()

	// O digest escreve em outra goroutine quando agendado; as leituras do
	// status passam pelo mesmo mutex das escritas
	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, service.lastRunID, status["last_run_id"])
	assert.NotEmpty(t, status["last_run_id"])
	assert.Equal(t, service.lastSyncStartedAt, status["last_sync_started_at"])
	assert.Equal(t, service.lastSyncCompletedAt, status["last_sync_completed_at"])
}

func TestSyncAllBrandDigestsSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brandRepo := mocks.NewMockBrandRepository(ctrl)
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	snapshotRepo := mocks.NewMockBrandSnapshotRepository(ctrl)

	service := &BrandDigestSyncService{
		brandRepo:    brandRepo,
		metricRepo:   metricRepo,
		snapshotRepo: snapshotRepo,
		syncRunning:  true,
	}

	// Nenhuma chamada ao banco é esperada: a execução concorrente é ignorada
	service.syncAllBrandDigests()
}

func TestSyncAllBrandDigestsContinuesOnSaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brandRepo := mocks.NewMockBrandRepository(ctrl)
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	snapshotRepo := mocks.NewMockBrandSnapshotRepository(ctrl)

	service := &BrandDigestSyncService{
		brandRepo:    brandRepo,
		metricRepo:   metricRepo,
		snapshotRepo: snapshotRepo,
	}

	brandRepo.EXPECT().ListBrands().Return([]*domain.Brand{
		{ID: 1, Name: "Marca A"},
		{ID: 2, Name: "Marca B"},
	}, nil)
	metricRepo.EXPECT().ListAllOrdered().Return([]*domain.DailyMetric{}, nil)

	gomock.InOrder(
		snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(assert.AnError),
		snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(nil),
	)

	// A falha na primeira marca não impede a segunda
	service.syncAllBrandDigests()
}
