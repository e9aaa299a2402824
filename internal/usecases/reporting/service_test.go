package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/iqol/brand-pulse-api/infrastructure/repository/mocks"
	"github.com/iqol/brand-pulse-api/internal/domain"
)

func newOverviewService(ctrl *gomock.Controller) (Reporter, *mocks.MockBrandRepository, *mocks.MockMetricRepository, *mocks.MockBlogRepository, *mocks.MockSocialPostRepository) {
	brandRepo := mocks.NewMockBrandRepository(ctrl)
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	blogRepo := mocks.NewMockBlogRepository(ctrl)
	postRepo := mocks.NewMockSocialPostRepository(ctrl)

	return NewService(brandRepo, metricRepo, blogRepo, postRepo), brandRepo, metricRepo, blogRepo, postRepo
}

func TestOverview(t *testing.T) {
	t.Run("usuário comum recebe apenas as marcas vinculadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, brandRepo, metricRepo, blogRepo, postRepo := newOverviewService(ctrl)

		brandRepo.EXPECT().ListBrands().Return([]*domain.Brand{
			{ID: 1, Name: "Marca A"},
			{ID: 2, Name: "Marca B"},
		}, nil)
		metricRepo.EXPECT().ListAllOrdered().Return([]*domain.DailyMetric{
			{ID: 2, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 150},
			{ID: 1, BrandID: 1, Date: "2026-08-27", WebsiteVisits: 100},
			{ID: 3, BrandID: 2, Date: "2026-08-28", WebsiteVisits: 999},
		}, nil)
		blogRepo.EXPECT().ListAllByViews().Return([]*domain.Blog{
			{ID: 1, BrandID: 1, Views: 60},
			{ID: 2, BrandID: 2, Views: 999},
		}, nil)
		postRepo.EXPECT().ListAllByImpressions().Return([]*domain.SocialPost{
			{ID: 1, BrandID: 1, Platform: domain.PlatformInstagram, ImpressionsViews: 500},
		}, nil)

		claims := &domain.Claims{UserID: 2, UserRole: domain.RoleUser, UserAllowedBrands: []int{1}}
		dashboard, err := service.Overview(claims)

		assert.NoError(t, err)
		assert.Len(t, dashboard.Brands, 1)

		overview := dashboard.Brands[0]
		assert.Equal(t, 1, overview.Brand.ID)
		assert.Equal(t, 150, overview.Stats.WebsiteVisits)
		assert.Equal(t, 50, overview.Stats.WebsiteChange)
		assert.Len(t, overview.TopBlogs, 1)
		assert.Len(t, overview.TopPosts.Instagram, 1)
		assert.Empty(t, overview.TopPosts.Linkedin)
	})

	t.Run("falha em métricas e conteúdo degrada para seções vazias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, brandRepo, metricRepo, blogRepo, postRepo := newOverviewService(ctrl)

		brandRepo.EXPECT().ListBrands().Return([]*domain.Brand{{ID: 1, Name: "Marca A"}}, nil)
		metricRepo.EXPECT().ListAllOrdered().Return(nil, assert.AnError)
		blogRepo.EXPECT().ListAllByViews().Return(nil, assert.AnError)
		postRepo.EXPECT().ListAllByImpressions().Return(nil, assert.AnError)

		dashboard, err := service.Overview(&domain.Claims{UserRole: domain.RoleAdmin})

		assert.NoError(t, err)
		assert.Len(t, dashboard.Brands, 1)
		assert.Equal(t, 0, dashboard.Brands[0].Stats.WebsiteVisits)
		assert.Empty(t, dashboard.Brands[0].TopBlogs)
	})

	t.Run("falha na listagem de marcas é propagada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, brandRepo, _, _, _ := newOverviewService(ctrl)

		brandRepo.EXPECT().ListBrands().Return(nil, assert.AnError)

		_, err := service.Overview(&domain.Claims{UserRole: domain.RoleAdmin})

		assert.Error(t, err)
	})

	t.Run("usuário sem vínculos recebe dashboard vazio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, brandRepo, metricRepo, blogRepo, postRepo := newOverviewService(ctrl)

		brandRepo.EXPECT().ListBrands().Return([]*domain.Brand{{ID: 1, Name: "Marca A"}}, nil)
		metricRepo.EXPECT().ListAllOrdered().Return([]*domain.DailyMetric{}, nil)
		blogRepo.EXPECT().ListAllByViews().Return([]*domain.Blog{}, nil)
		postRepo.EXPECT().ListAllByImpressions().Return([]*domain.SocialPost{}, nil)

		claims := &domain.Claims{UserID: 2, UserRole: domain.RoleUser, UserAllowedBrands: nil}
		dashboard, err := service.Overview(claims)

		assert.NoError(t, err)
		assert.NotNil(t, dashboard.Brands)
		assert.Empty(t, dashboard.Brands)
	})
}
