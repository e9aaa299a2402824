package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles aceitos para um perfil
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password,omitempty"`
	Role          string    `json:"role"`
	Active        bool      `json:"active"`
	AllowedBrands []int     `json:"allowed_brands"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsAdmin indica se o usuário tem acesso irrestrito às marcas
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UpdateUserRequest struct {
	ID            int     `json:"id"`
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Password      *string `json:"password"`
	Role          *string `json:"role"`
	Active        *bool   `json:"active"`
	AllowedBrands *[]int  `json:"allowed_brands"`
}

// Claims é a identidade verificada que atravessa a fronteira de confiança.
// A autorização só aceita dados vindos daqui, nunca role ou lista de marcas
// afirmados pelo cliente.
type Claims struct {
	UserID            int
	UserName          string
	UserEmail         string
	UserRole          string
	UserActive        bool
	UserAllowedBrands []int
	jwt.RegisteredClaims
}

// IsAdmin indica se o portador do token tem perfil de administrador
func (c *Claims) IsAdmin() bool {
	return c.UserRole == RoleAdmin
}
