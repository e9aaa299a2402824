package reporting

import (
	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/infrastructure/repository"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/authorizing"
)

type Reporter interface {
	Overview(claims *domain.Claims) (*domain.DashboardResponse, error)
}

type Service struct {
	brandRepo  repository.BrandRepository
	metricRepo repository.MetricRepository
	blogRepo   repository.BlogRepository
	postRepo   repository.SocialPostRepository
}

func NewService(
	brandRepo repository.BrandRepository,
	metricRepo repository.MetricRepository,
	blogRepo repository.BlogRepository,
	postRepo repository.SocialPostRepository,
) Reporter {
	return &Service{
		brandRepo:  brandRepo,
		metricRepo: metricRepo,
		blogRepo:   blogRepo,
		postRepo:   postRepo,
	}
}

// Overview monta o dashboard apenas com as marcas visíveis para o portador
// do token. Falha de leitura em métricas ou conteúdo degrada para seções
// vazias com warning; falha na listagem de marcas é propagada, pois sem elas
// não há o que montar.
func (s *Service) Overview(claims *domain.Claims) (*domain.DashboardResponse, error) {
	brands, err := s.brandRepo.ListBrands()
	if err != nil {
		return nil, err
	}

	visibleBrands := authorizing.VisibleBrands(claims, brands)

	metrics, err := s.metricRepo.ListAllOrdered()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar métricas para o dashboard, seguindo com lista vazia")
		metrics = nil
	}

	blogs, err := s.blogRepo.ListAllByViews()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar blogs para o dashboard, seguindo com lista vazia")
		blogs = nil
	}

	posts, err := s.postRepo.ListAllByImpressions()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar posts para o dashboard, seguindo com lista vazia")
		posts = nil
	}

	response := &domain.DashboardResponse{
		Brands: make([]*domain.BrandOverview, 0, len(visibleBrands)),
	}

	for _, brand := range visibleBrands {
		response.Brands = append(response.Brands, &domain.BrandOverview{
			Brand:    brand,
			Stats:    AggregateBrand(metrics, brand.ID),
			TopBlogs: TopBlogs(blogs, brand.ID),
			TopPosts: TopPosts(posts, brand.ID),
		})
	}

	return response, nil
}
