package tracking

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/iqol/brand-pulse-api/infrastructure/repository/mocks"
	"github.com/iqol/brand-pulse-api/internal/domain"
)

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserName: "Alice Admin", UserRole: domain.RoleAdmin}
}

func userClaims(brands ...int) *domain.Claims {
	return &domain.Claims{UserID: 2, UserName: "Bruno Comum", UserRole: domain.RoleUser, UserAllowedBrands: brands}
}

func newService(ctrl *gomock.Controller) (Tracker, *mocks.MockMetricRepository, *mocks.MockBlogRepository, *mocks.MockSocialPostRepository) {
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	blogRepo := mocks.NewMockBlogRepository(ctrl)
	postRepo := mocks.NewMockSocialPostRepository(ctrl)

	return NewService(metricRepo, blogRepo, postRepo), metricRepo, blogRepo, postRepo
}

func TestRecentMetrics(t *testing.T) {
	t.Run("lista é filtrada pelas marcas do usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		metricRepo.EXPECT().ListRecent(uint64(20)).Return([]*domain.DailyMetric{
			{ID: 1, BrandID: 1},
			{ID: 2, BrandID: 2},
			{ID: 3, BrandID: 1},
		}, nil)

		metrics, err := service.RecentMetrics(userClaims(1))

		assert.NoError(t, err)
		assert.Len(t, metrics, 2)
		assert.Equal(t, 1, metrics[0].ID)
		assert.Equal(t, 3, metrics[1].ID)
	})

	t.Run("falha de leitura degrada para lista vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		metricRepo.EXPECT().ListRecent(uint64(20)).Return(nil, errors.New("conexão recusada"))

		metrics, err := service.RecentMetrics(userClaims(1))

		assert.NoError(t, err)
		assert.NotNil(t, metrics)
		assert.Empty(t, metrics)
	})
}

func TestCreateMetric(t *testing.T) {
	metric := &domain.DailyMetric{BrandID: 2, Date: "2026-08-28", WebsiteVisits: 100}

	t.Run("usuário com vínculo cria o registro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		metricRepo.EXPECT().Create(metric).Return(&domain.DailyMetric{ID: 10, BrandID: 2}, nil)

		created, err := service.CreateMetric(userClaims(2), metric)

		assert.NoError(t, err)
		assert.Equal(t, 10, created.ID)
	})

	t.Run("marca fora da lista é recusada antes de tocar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newService(ctrl)

		_, err := service.CreateMetric(userClaims(1), metric)

		assert.ErrorIs(t, err, ErrBrandForbidden)
	})

	t.Run("admin cria para qualquer marca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		metricRepo.EXPECT().Create(metric).Return(metric, nil)

		_, err := service.CreateMetric(adminClaims(), metric)

		assert.NoError(t, err)
	})
}

func TestUpdateMetric(t *testing.T) {
	t.Run("a marca gravada e a marca de destino precisam ser acessíveis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		// Registro pertence à marca 1, usuário tenta mover para a marca 2
		metricRepo.EXPECT().GetByID(5).Return(&domain.DailyMetric{ID: 5, BrandID: 1}, nil)

		err := service.UpdateMetric(userClaims(1), &domain.DailyMetric{ID: 5, BrandID: 2})

		assert.ErrorIs(t, err, ErrBrandForbidden)
	})

	t.Run("registro de marca alheia não pode ser alterado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		metricRepo.EXPECT().GetByID(5).Return(&domain.DailyMetric{ID: 5, BrandID: 2}, nil)

		err := service.UpdateMetric(userClaims(1), &domain.DailyMetric{ID: 5, BrandID: 1})

		assert.ErrorIs(t, err, ErrBrandForbidden)
	})

	t.Run("registro inexistente devolve não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		metricRepo.EXPECT().GetByID(5).Return(nil, nil)

		err := service.UpdateMetric(userClaims(1), &domain.DailyMetric{ID: 5, BrandID: 1})

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("atualização dentro do escopo é gravada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		updated := &domain.DailyMetric{ID: 5, BrandID: 1, WebsiteVisits: 200}
		metricRepo.EXPECT().GetByID(5).Return(&domain.DailyMetric{ID: 5, BrandID: 1}, nil)
		metricRepo.EXPECT().Update(updated).Return(nil)

		err := service.UpdateMetric(userClaims(1), updated)

		assert.NoError(t, err)
	})
}

func TestDeleteMetric(t *testing.T) {
	t.Run("a decisão usa a marca gravada, não a afirmada pelo cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		metricRepo.EXPECT().GetByID(5).Return(&domain.DailyMetric{ID: 5, BrandID: 2}, nil)

		err := service.DeleteMetric(userClaims(1), 5)

		assert.ErrorIs(t, err, ErrBrandForbidden)
	})

	t.Run("exclusão dentro do escopo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, metricRepo, _, _ := newService(ctrl)

		metricRepo.EXPECT().GetByID(5).Return(&domain.DailyMetric{ID: 5, BrandID: 1}, nil)
		metricRepo.EXPECT().Delete(5).Return(nil)

		err := service.DeleteMetric(userClaims(1), 5)

		assert.NoError(t, err)
	})
}

func TestBlogAndPostGuards(t *testing.T) {
	t.Run("criação de blog fora do escopo é recusada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _ := newService(ctrl)

		_, err := service.CreateBlog(userClaims(1), &domain.Blog{BrandID: 9})

		assert.ErrorIs(t, err, ErrBrandForbidden)
	})

	t.Run("exclusão de post fora do escopo é recusada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, postRepo := newService(ctrl)

		postRepo.EXPECT().GetByID(3).Return(&domain.SocialPost{ID: 3, BrandID: 9}, nil)

		err := service.DeletePost(userClaims(1), 3)

		assert.ErrorIs(t, err, ErrBrandForbidden)
	})

	t.Run("listas recentes de blogs e posts são filtradas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, blogRepo, postRepo := newService(ctrl)

		blogRepo.EXPECT().ListRecent(uint64(20)).Return([]*domain.Blog{
			{ID: 1, BrandID: 1},
			{ID: 2, BrandID: 9},
		}, nil)
		postRepo.EXPECT().ListRecent(uint64(20)).Return([]*domain.SocialPost{
			{ID: 1, BrandID: 9},
			{ID: 2, BrandID: 1},
		}, nil)

		blogs, err := service.RecentBlogs(userClaims(1))
		assert.NoError(t, err)
		assert.Len(t, blogs, 1)

		posts, err := service.RecentPosts(userClaims(1))
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
		assert.Equal(t, 2, posts[0].ID)
	})
}
