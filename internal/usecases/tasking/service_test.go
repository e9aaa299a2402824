package tasking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/iqol/brand-pulse-api/infrastructure/repository/mocks"
	"github.com/iqol/brand-pulse-api/internal/domain"
)

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserName: "Alice Admin", UserRole: domain.RoleAdmin}
}

func userClaims() *domain.Claims {
	return &domain.Claims{UserID: 2, UserName: "Bruno Comum", UserRole: domain.RoleUser}
}

func TestCreateItem(t *testing.T) {
	tests := []struct {
		name     string
		claims   *domain.Claims
		item     *domain.ActionItem
		setup    func(repo *mocks.MockActionItemRepository)
		wantErr  error
		validate func(t *testing.T, created *domain.ActionItem)
	}{
		{
			name:   "admin atribui tarefa a terceiro",
			claims: adminClaims(),
			item:   &domain.ActionItem{Task: "Revisar campanha", DueDate: "2026-09-01", AssignedTo: "Carla Terceira"},
			setup: func(repo *mocks.MockActionItemRepository) {
				repo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(item *domain.ActionItem) (*domain.ActionItem, error) {
						assert.Equal(t, "Carla Terceira", item.AssignedTo)
						assert.Equal(t, domain.StatusPending, item.Status)
						item.ID = 10
						return item, nil
					})
			},
			validate: func(t *testing.T, created *domain.ActionItem) {
				assert.Equal(t, 10, created.ID)
				assert.Equal(t, "Carla Terceira", created.AssignedTo)
			},
		},
		{
			name:   "usuário comum tem o responsável sobrescrito pelo próprio nome",
			claims: userClaims(),
			item:   &domain.ActionItem{Task: "Publicar post", DueDate: "2026-09-02", AssignedTo: "Carla Terceira"},
			setup: func(repo *mocks.MockActionItemRepository) {
				repo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(item *domain.ActionItem) (*domain.ActionItem, error) {
						assert.Equal(t, "Bruno Comum", item.AssignedTo)
						return item, nil
					})
			},
			validate: func(t *testing.T, created *domain.ActionItem) {
				assert.Equal(t, "Bruno Comum", created.AssignedTo)
			},
		},
		{
			name:    "tarefa sem texto é rejeitada antes de tocar o banco",
			claims:  userClaims(),
			item:    &domain.ActionItem{Task: "", DueDate: "2026-09-02"},
			setup:   func(repo *mocks.MockActionItemRepository) {},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "prazo fora do formato YYYY-MM-DD é rejeitado",
			claims:  userClaims(),
			item:    &domain.ActionItem{Task: "Publicar post", DueDate: "01/09/2026"},
			setup:   func(repo *mocks.MockActionItemRepository) {},
			wantErr: ErrInvalidDueDate,
		},
		{
			name:    "admin não cria tarefa sem responsável",
			claims:  adminClaims(),
			item:    &domain.ActionItem{Task: "Revisar campanha", DueDate: "2026-09-01", AssignedTo: ""},
			setup:   func(repo *mocks.MockActionItemRepository) {},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "tarefa sem prazo é rejeitada antes de tocar o banco",
			claims:  userClaims(),
			item:    &domain.ActionItem{Task: "Publicar post", DueDate: ""},
			setup:   func(repo *mocks.MockActionItemRepository) {},
			wantErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockActionItemRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)
			created, err := service.CreateItem(tt.claims, tt.item)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, created)
		})
	}
}

func TestToggleItemStatus(t *testing.T) {
	tests := []struct {
		name       string
		stored     *domain.ActionItem
		wantStatus string
	}{
		{
			name:       "Pending vira Done",
			stored:     &domain.ActionItem{ID: 7, Status: domain.StatusPending},
			wantStatus: domain.StatusDone,
		},
		{
			name:       "Done volta para Pending",
			stored:     &domain.ActionItem{ID: 7, Status: domain.StatusDone},
			wantStatus: domain.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockActionItemRepository(ctrl)
			repo.EXPECT().GetByID(7).Return(tt.stored, nil)
			repo.EXPECT().UpdateStatus(7, tt.wantStatus).Return(nil)

			service := NewService(repo)
			item, err := service.ToggleItemStatus(7)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, item.Status)
		})
	}
}

func TestToggleItemStatusNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActionItemRepository(ctrl)
	repo.EXPECT().GetByID(99).Return(nil, nil)

	service := NewService(repo)
	_, err := service.ToggleItemStatus(99)

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestDeleteItem(t *testing.T) {
	stored := &domain.ActionItem{ID: 7, AssignedTo: "Bruno Comum"}

	tests := []struct {
		name    string
		claims  *domain.Claims
		setup   func(repo *mocks.MockActionItemRepository)
		wantErr error
	}{
		{
			name:   "admin exclui item de qualquer pessoa",
			claims: adminClaims(),
			setup: func(repo *mocks.MockActionItemRepository) {
				repo.EXPECT().GetByID(7).Return(stored, nil)
				repo.EXPECT().Delete(7).Return(nil)
			},
		},
		{
			name:   "responsável exclui o próprio item",
			claims: userClaims(),
			setup: func(repo *mocks.MockActionItemRepository) {
				repo.EXPECT().GetByID(7).Return(stored, nil)
				repo.EXPECT().Delete(7).Return(nil)
			},
		},
		{
			name:   "usuário comum não exclui item de terceiro",
			claims: &domain.Claims{UserID: 3, UserName: "Carla Terceira", UserRole: domain.RoleUser},
			setup: func(repo *mocks.MockActionItemRepository) {
				repo.EXPECT().GetByID(7).Return(stored, nil)
			},
			wantErr: ErrDeleteForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockActionItemRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)
			err := service.DeleteItem(tt.claims, 7)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
