package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/iqol/brand-pulse-api/infrastructure/repository/mocks"
	"github.com/iqol/brand-pulse-api/internal/config"
	"github.com/iqol/brand-pulse-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			SecretKey:     "segredo-de-teste",
			TokenTTLHours: 1,
		},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:            1,
			Name:          "Bruno Comum",
			Email:         "bruno@iqol.com",
			PasswordHash:  hashPassword(t, "senha-correta"),
			Role:          domain.RoleUser,
			Active:        true,
			AllowedBrands: []int{1, 3},
		}
	}

	t.Run("credenciais válidas devolvem token com as claims do perfil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		brandRepo := mocks.NewMockBrandRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("bruno@iqol.com").Return(activeUser(t), nil)

		service := NewService(userRepo, brandRepo, testConfig())
		token, err := service.LoginUser("bruno@iqol.com", "senha-correta")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// O token carrega role e marcas verificados no servidor
		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, domain.RoleUser, claims.UserRole)
		assert.Equal(t, []int{1, 3}, claims.UserAllowedBrands)
	})

	t.Run("email é normalizado antes da consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		brandRepo := mocks.NewMockBrandRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("bruno@iqol.com").Return(activeUser(t), nil)

		service := NewService(userRepo, brandRepo, testConfig())
		_, err := service.LoginUser("  Bruno@IQOL.com ", "senha-correta")

		assert.NoError(t, err)
	})

	t.Run("senha errada devolve credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		brandRepo := mocks.NewMockBrandRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("bruno@iqol.com").Return(activeUser(t), nil)

		service := NewService(userRepo, brandRepo, testConfig())
		_, err := service.LoginUser("bruno@iqol.com", "senha-errada")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("usuário inexistente devolve credenciais inválidas, não usuário não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		brandRepo := mocks.NewMockBrandRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ninguem@iqol.com").Return(nil, nil)

		service := NewService(userRepo, brandRepo, testConfig())
		_, err := service.LoginUser("ninguem@iqol.com", "qualquer")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("conta desativada não loga mesmo com a senha certa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		disabled := activeUser(t)
		disabled.Active = false

		userRepo := mocks.NewMockUserRepository(ctrl)
		brandRepo := mocks.NewMockBrandRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("bruno@iqol.com").Return(disabled, nil)

		service := NewService(userRepo, brandRepo, testConfig())
		_, err := service.LoginUser("bruno@iqol.com", "senha-correta")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("campos vazios são rejeitados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		brandRepo := mocks.NewMockBrandRepository(ctrl)

		service := NewService(userRepo, brandRepo, testConfig())
		_, err := service.LoginUser("", "")

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("bruno@iqol.com").Return(&domain.User{
		ID:           1,
		Email:        "bruno@iqol.com",
		Name:         "Bruno Comum",
		PasswordHash: hashPassword(t, "senha-correta"),
		Role:         domain.RoleUser,
		Active:       true,
	}, nil)

	service := NewService(userRepo, brandRepo, testConfig())
	token, err := service.LoginUser("bruno@iqol.com", "senha-correta")
	assert.NoError(t, err)

	// Token assinado com outro segredo não é aceito
	otherCfg := testConfig()
	otherCfg.Auth.SecretKey = "outro-segredo"
	otherService := NewService(userRepo, brandRepo, otherCfg)

	_, err = otherService.ValidateToken(token)
	assert.Error(t, err)
}

func TestCreateUserHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)

	userRepo.EXPECT().GetUserByEmail("nova@iqol.com").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// A senha nunca chega em texto puro ao repositório
			assert.NotEqual(t, "senha-nova", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-nova")))
			assert.True(t, user.Active)
			assert.Equal(t, domain.RoleUser, user.Role)
			user.ID = 5
			return user, nil
		})

	service := NewService(userRepo, brandRepo, testConfig())
	created, err := service.CreateUser(&domain.User{
		Name:         "Nova Usuária",
		Email:        "nova@iqol.com",
		PasswordHash: "senha-nova",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, created.ID)
}

func TestUpdateUserResetsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)

	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
		ID:           7,
		Name:         "Bruno Comum",
		Email:        "bruno@iqol.com",
		PasswordHash: "$2a$10$hash-antigo",
		Role:         domain.RoleUser,
		Active:       true,
	}, nil)
	userRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			// A nova senha nunca chega em texto puro ao repositório
			assert.NotEqual(t, "senha-nova", user.PasswordHash)
			assert.NotEqual(t, "$2a$10$hash-antigo", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-nova")))
			return nil
		})

	service := NewService(userRepo, brandRepo, testConfig())
	newPassword := "senha-nova"
	err := service.UpdateUser(&domain.UpdateUserRequest{ID: 7, Password: &newPassword})

	assert.NoError(t, err)
}

func TestUpdateUserRejectsEmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)

	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, Active: true}, nil)

	service := NewService(userRepo, brandRepo, testConfig())
	emptyPassword := ""
	err := service.UpdateUser(&domain.UpdateUserRequest{ID: 7, Password: &emptyPassword})

	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestCreateUserRejectsInvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)

	service := NewService(userRepo, brandRepo, testConfig())
	_, err := service.CreateUser(&domain.User{
		Name:         "Nova Usuária",
		Email:        "nova@iqol.com",
		PasswordHash: "senha-nova",
		Role:         "supervisor",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestManageUserBrands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	brandRepo := mocks.NewMockBrandRepository(ctrl)

	// Usuário hoje vinculado às marcas 1 e 2; a lista final pedida é 2 e 3:
	// vincula a 3 e desvincula a 1
	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, Active: true}, nil)
	userRepo.EXPECT().GetAllowedBrands(7).Return([]int{1, 2}, nil)
	userRepo.EXPECT().LinkBrand(7, 3).Return(nil)
	userRepo.EXPECT().UnlinkBrand(7, 1).Return(nil)

	service := NewService(userRepo, brandRepo, testConfig())
	err := service.ManageUserBrands(7, []int{2, 3})

	assert.NoError(t, err)
}
