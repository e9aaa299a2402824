package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/iqol/brand-pulse-api/infrastructure/repository"
	"github.com/iqol/brand-pulse-api/internal/config"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/pkg/apiErrors"
)

type Authenticator interface {
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID int) (*domain.User, error)
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.UpdateUserRequest) error
	ListUser() ([]*domain.User, error)
	DeleteUser(userID int) error
	ManageUserBrands(userID int, brandIDs []int) error
	LinkUserBrand(userID, brandID int) error
	UnlinkUserBrand(userID, brandID int) error
}

type Service struct {
	userRepo  repository.UserRepository
	brandRepo repository.BrandRepository
	cfg       *config.Config
}

func NewService(userRepo repository.UserRepository, brandRepo repository.BrandRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:  userRepo,
		brandRepo: brandRepo,
		cfg:       cfg,
	}
}

// LoginUser valida as credenciais e devolve um token JWT. A comparação de
// senha usa bcrypt; nunca existe comparação de senha em texto puro.
func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Email ou senha incorretos")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour

	claims := domain.Claims{
		UserID:            user.ID,
		UserName:          user.Name,
		UserEmail:         user.Email,
		UserRole:          user.Role,
		UserActive:        user.Active,
		UserAllowedBrands: user.AllowedBrands,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if user == nil {
		return nil, nil
	}

	user.PasswordHash = ""
	return user, nil
}

// CreateUser cria um perfil. A senha chega em texto no campo PasswordHash e
// sai daqui com hash bcrypt; o valor original não é persistido.
func (s *Service) CreateUser(user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios")
	}

	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	if user.Role != domain.RoleAdmin && user.Role != domain.RoleUser {
		return nil, NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, "Role deve ser admin ou user")
	}

	user.Email = handleEmail(user.Email)

	userDatabase, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if userDatabase != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = true

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateUser(user *domain.UpdateUserRequest) error {
	if user.ID == 0 {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID é obrigatório")
	}

	userDatabase, err := s.userRepo.GetUserByID(user.ID)
	if err != nil {
		return err
	}
	if userDatabase == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("usuário não encontrado para o ID: %d", user.ID))
	}

	if user.Name != nil {
		userDatabase.Name = *user.Name
	}

	if user.Email != nil {
		userDatabase.Email = handleEmail(*user.Email)
	}

	if user.Password != nil {
		if *user.Password == "" {
			return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha não pode ser vazia")
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		userDatabase.PasswordHash = string(hashedPassword)
	}

	if user.Role != nil {
		if *user.Role != domain.RoleAdmin && *user.Role != domain.RoleUser {
			return NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidFormat, "Role deve ser admin ou user")
		}
		userDatabase.Role = *user.Role
	}

	if user.Active != nil {
		userDatabase.Active = *user.Active
	}

	if err := s.userRepo.UpdateUser(userDatabase); err != nil {
		return err
	}

	if user.AllowedBrands != nil {
		return s.ManageUserBrands(user.ID, *user.AllowedBrands)
	}

	return nil
}

func (s *Service) ListUser() ([]*domain.User, error) {
	users, err := s.userRepo.ListUser()
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Service) DeleteUser(userID int) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("usuário não encontrado para o ID: %d", userID))
	}

	return s.userRepo.DeleteUser(userID)
}

// ManageUserBrands substitui o conjunto de marcas vinculadas ao usuário:
// remove o que saiu da lista e adiciona o que entrou
func (s *Service) ManageUserBrands(userID int, brandIDs []int) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("usuário não encontrado para o ID: %d", userID))
	}

	currentBrands, err := s.userRepo.GetAllowedBrands(userID)
	if err != nil {
		return err
	}

	for _, current := range currentBrands {
		if !containsBrand(brandIDs, current) {
			if err := s.userRepo.UnlinkBrand(userID, current); err != nil {
				logrus.Warnf("Erro ao desvincular marca %d do usuário %d: %v", current, userID, err)
				// Continuar mesmo com erro
			}
		}
	}

	for _, wanted := range brandIDs {
		if !containsBrand(currentBrands, wanted) {
			if err := s.userRepo.LinkBrand(userID, wanted); err != nil {
				logrus.Warnf("Erro ao vincular marca %d ao usuário %d: %v", wanted, userID, err)
				// Continuar mesmo com erro
			}
		}
	}

	return nil
}

func (s *Service) LinkUserBrand(userID, brandID int) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("usuário não encontrado para o ID: %d", userID))
	}

	brand, err := s.brandRepo.GetBrandByID(brandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrInvalidRequest, fmt.Sprintf("marca não encontrada para o ID: %d", brandID))
	}

	return s.userRepo.LinkBrand(userID, brandID)
}

func (s *Service) UnlinkUserBrand(userID, brandID int) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("usuário não encontrado para o ID: %d", userID))
	}

	return s.userRepo.UnlinkBrand(userID, brandID)
}

func containsBrand(brandIDs []int, brandID int) bool {
	for _, id := range brandIDs {
		if id == brandID {
			return true
		}
	}
	return false
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled)
}
