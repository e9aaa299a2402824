package tasking

import (
	"errors"

	pkgErrors "github.com/pkg/errors"

	"github.com/iqol/brand-pulse-api/infrastructure/repository"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/authorizing"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

var (
	// ErrMissingRequiredData indica que a tarefa veio sem texto, prazo ou responsável
	ErrMissingRequiredData = errors.New("tarefa, prazo e responsável são obrigatórios")
	// ErrInvalidDueDate indica que o prazo não está no formato YYYY-MM-DD
	ErrInvalidDueDate = errors.New("prazo em formato inválido")
	// ErrItemNotFound indica que o action item não existe
	ErrItemNotFound = errors.New("action item não encontrado")
	// ErrDeleteForbidden indica que o usuário não é admin nem o responsável
	ErrDeleteForbidden = errors.New("apenas admins ou o responsável podem excluir o item")
)

type Tasker interface {
	ListItems() ([]*domain.ActionItem, error)
	CreateItem(claims *domain.Claims, item *domain.ActionItem) (*domain.ActionItem, error)
	ToggleItemStatus(itemID int) (*domain.ActionItem, error)
	DeleteItem(claims *domain.Claims, itemID int) error
}

type Service struct {
	itemRepo repository.ActionItemRepository
}

func NewService(itemRepo repository.ActionItemRepository) Tasker {
	return &Service{itemRepo: itemRepo}
}

// ListItems devolve todos os action items do time, prazo mais distante
// primeiro. A lista é compartilhada: não há filtro por marca aqui.
func (s *Service) ListItems() ([]*domain.ActionItem, error) {
	items, err := s.itemRepo.List()
	if err != nil {
		return nil, pkgErrors.Wrap(err, "erro ao listar action items")
	}

	return items, nil
}

// CreateItem grava uma nova tarefa. Usuários comuns sempre aparecem como
// responsáveis pelo que criam; apenas admins atribuem tarefas a terceiros.
func (s *Service) CreateItem(claims *domain.Claims, item *domain.ActionItem) (*domain.ActionItem, error) {
	if item.Task == "" || item.DueDate == "" {
		return nil, ErrMissingRequiredData
	}

	if _, err := utils.ParseDate(item.DueDate); err != nil {
		return nil, ErrInvalidDueDate
	}

	item.AssignedTo = authorizing.AssigneeFor(claims, item.AssignedTo)
	if item.AssignedTo == "" {
		return nil, ErrMissingRequiredData
	}

	if item.Status == "" {
		item.Status = domain.StatusPending
	}

	created, err := s.itemRepo.Create(item)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "erro ao criar action item")
	}

	return created, nil
}

// ToggleItemStatus alterna Pending/Done a partir do status gravado no banco,
// nunca do status enviado pelo cliente. Qualquer usuário autenticado pode
// marcar uma tarefa como concluída.
func (s *Service) ToggleItemStatus(itemID int) (*domain.ActionItem, error) {
	stored, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "erro ao buscar action item")
	}

	if stored == nil {
		return nil, ErrItemNotFound
	}

	next := domain.ToggleStatus(stored.Status)
	if err := s.itemRepo.UpdateStatus(itemID, next); err != nil {
		return nil, pkgErrors.Wrap(err, "erro ao atualizar status do action item")
	}

	stored.Status = next

	return stored, nil
}

func (s *Service) DeleteItem(claims *domain.Claims, itemID int) error {
	stored, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return pkgErrors.Wrap(err, "erro ao buscar action item")
	}

	if stored == nil {
		return ErrItemNotFound
	}

	if !authorizing.CanDeleteItem(claims, stored) {
		return ErrDeleteForbidden
	}

	return s.itemRepo.Delete(itemID)
}
