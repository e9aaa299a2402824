package brandpicking

import (
	"github.com/pkg/errors"

	"github.com/iqol/brand-pulse-api/infrastructure/repository"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/authorizing"
)

type BrandPicker interface {
	ListVisibleBrands(claims *domain.Claims) ([]*domain.Brand, error)
}

type Service struct {
	brandRepo repository.BrandRepository
}

func NewService(brandRepo repository.BrandRepository) BrandPicker {
	return &Service{brandRepo: brandRepo}
}

// ListVisibleBrands devolve as marcas do catálogo visíveis para o portador do
// token, na ordem do catálogo. Admins enxergam todas.
func (s *Service) ListVisibleBrands(claims *domain.Claims) ([]*domain.Brand, error) {
	brands, err := s.brandRepo.ListBrands()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar marcas")
	}

	return authorizing.VisibleBrands(claims, brands), nil
}
