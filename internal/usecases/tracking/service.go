package tracking

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/infrastructure/repository"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/authorizing"
)

// recentLimit é o tamanho das listas recentes exibidas nas telas de registro
const recentLimit = 20

type Tracker interface {
	RecentMetrics(claims *domain.Claims) ([]*domain.DailyMetric, error)
	CreateMetric(claims *domain.Claims, metric *domain.DailyMetric) (*domain.DailyMetric, error)
	UpdateMetric(claims *domain.Claims, metric *domain.DailyMetric) error
	DeleteMetric(claims *domain.Claims, metricID int) error

	RecentBlogs(claims *domain.Claims) ([]*domain.Blog, error)
	CreateBlog(claims *domain.Claims, blog *domain.Blog) (*domain.Blog, error)
	UpdateBlog(claims *domain.Claims, blog *domain.Blog) error
	DeleteBlog(claims *domain.Claims, blogID int) error

	RecentPosts(claims *domain.Claims) ([]*domain.SocialPost, error)
	CreatePost(claims *domain.Claims, post *domain.SocialPost) (*domain.SocialPost, error)
	UpdatePost(claims *domain.Claims, post *domain.SocialPost) error
	DeletePost(claims *domain.Claims, postID int) error
}

type Service struct {
	metricRepo repository.MetricRepository
	blogRepo   repository.BlogRepository
	postRepo   repository.SocialPostRepository
}

func NewService(
	metricRepo repository.MetricRepository,
	blogRepo repository.BlogRepository,
	postRepo repository.SocialPostRepository,
) Tracker {
	return &Service{
		metricRepo: metricRepo,
		blogRepo:   blogRepo,
		postRepo:   postRepo,
	}
}

// RecentMetrics lista os registros mais recentes, já filtrados pelas marcas
// visíveis do usuário. Falha de leitura degrada para lista vazia com warning.
func (s *Service) RecentMetrics(claims *domain.Claims) ([]*domain.DailyMetric, error) {
	metrics, err := s.metricRepo.ListRecent(recentLimit)
	if err != nil {
		logrus.WithError(err).Warn("falha ao listar métricas recentes")
		return []*domain.DailyMetric{}, nil
	}

	return authorizing.ScopeMetrics(claims, metrics), nil
}

func (s *Service) CreateMetric(claims *domain.Claims, metric *domain.DailyMetric) (*domain.DailyMetric, error) {
	if !authorizing.CanAccess(claims, metric.BrandID, authorizing.Write) {
		return nil, ErrBrandForbidden
	}

	created, err := s.metricRepo.Create(metric)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar métrica diária")
	}

	return created, nil
}

// UpdateMetric exige acesso tanto à marca gravada no registro quanto à marca
// de destino, para impedir que um registro seja movido para fora do escopo.
func (s *Service) UpdateMetric(claims *domain.Claims, metric *domain.DailyMetric) error {
	stored, err := s.metricRepo.GetByID(metric.ID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar métrica diária")
	}

	if stored == nil {
		return ErrRecordNotFound
	}

	if !authorizing.CanAccess(claims, stored.BrandID, authorizing.Write) ||
		!authorizing.CanAccess(claims, metric.BrandID, authorizing.Write) {
		return ErrBrandForbidden
	}

	return s.metricRepo.Update(metric)
}

func (s *Service) DeleteMetric(claims *domain.Claims, metricID int) error {
	stored, err := s.metricRepo.GetByID(metricID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar métrica diária")
	}

	if stored == nil {
		return ErrRecordNotFound
	}

	if !authorizing.CanAccess(claims, stored.BrandID, authorizing.Write) {
		return ErrBrandForbidden
	}

	return s.metricRepo.Delete(metricID)
}

func (s *Service) RecentBlogs(claims *domain.Claims) ([]*domain.Blog, error) {
	blogs, err := s.blogRepo.ListRecent(recentLimit)
	if err != nil {
		logrus.WithError(err).Warn("falha ao listar blogs recentes")
		return []*domain.Blog{}, nil
	}

	return authorizing.ScopeBlogs(claims, blogs), nil
}

func (s *Service) CreateBlog(claims *domain.Claims, blog *domain.Blog) (*domain.Blog, error) {
	if !authorizing.CanAccess(claims, blog.BrandID, authorizing.Write) {
		return nil, ErrBrandForbidden
	}

	created, err := s.blogRepo.Create(blog)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar blog")
	}

	return created, nil
}

func (s *Service) UpdateBlog(claims *domain.Claims, blog *domain.Blog) error {
	stored, err := s.blogRepo.GetByID(blog.ID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar blog")
	}

	if stored == nil {
		return ErrRecordNotFound
	}

	if !authorizing.CanAccess(claims, stored.BrandID, authorizing.Write) ||
		!authorizing.CanAccess(claims, blog.BrandID, authorizing.Write) {
		return ErrBrandForbidden
	}

	return s.blogRepo.Update(blog)
}

func (s *Service) DeleteBlog(claims *domain.Claims, blogID int) error {
	stored, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar blog")
	}

	if stored == nil {
		return ErrRecordNotFound
	}

	if !authorizing.CanAccess(claims, stored.BrandID, authorizing.Write) {
		return ErrBrandForbidden
	}

	return s.blogRepo.Delete(blogID)
}

func (s *Service) RecentPosts(claims *domain.Claims) ([]*domain.SocialPost, error) {
	posts, err := s.postRepo.ListRecent(recentLimit)
	if err != nil {
		logrus.WithError(err).Warn("falha ao listar posts recentes")
		return []*domain.SocialPost{}, nil
	}

	return authorizing.ScopePosts(claims, posts), nil
}

func (s *Service) CreatePost(claims *domain.Claims, post *domain.SocialPost) (*domain.SocialPost, error) {
	if !authorizing.CanAccess(claims, post.BrandID, authorizing.Write) {
		return nil, ErrBrandForbidden
	}

	created, err := s.postRepo.Create(post)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar post")
	}

	return created, nil
}

func (s *Service) UpdatePost(claims *domain.Claims, post *domain.SocialPost) error {
	stored, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar post")
	}

	if stored == nil {
		return ErrRecordNotFound
	}

	if !authorizing.CanAccess(claims, stored.BrandID, authorizing.Write) ||
		!authorizing.CanAccess(claims, post.BrandID, authorizing.Write) {
		return ErrBrandForbidden
	}

	return s.postRepo.Update(post)
}

func (s *Service) DeletePost(claims *domain.Claims, postID int) error {
	stored, err := s.postRepo.GetByID(postID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar post")
	}

	if stored == nil {
		return ErrRecordNotFound
	}

	if !authorizing.CanAccess(claims, stored.BrandID, authorizing.Write) {
		return ErrBrandForbidden
	}

	return s.postRepo.Delete(postID)
}
