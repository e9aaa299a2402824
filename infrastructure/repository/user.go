package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/infrastructure/database/postgres"
	"github.com/iqol/brand-pulse-api/internal/domain"
)

const (
	profilesTable   = "profiles"
	userBrandsTable = "user_brands"
)

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	DeleteUser(userID int) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListUser() ([]*domain.User, error)
	GetAllowedBrands(userID int) ([]int, error)
	LinkBrand(userID, brandID int) error
	UnlinkBrand(userID, brandID int) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(profilesTable).
		Columns("name", "email", "password_hash", "role", "active").
		Values(user.Name, user.Email, user.PasswordHash, user.Role, user.Active).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	profilesSQL, profilesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(profilesSQL, profilesArgs...).Scan(&user.ID)
	if err != nil {
		return nil, err
	}

	for _, brandID := range user.AllowedBrands {
		if err := r.LinkBrand(user.ID, brandID); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	queryBuilder := squirrel.
		Update(profilesTable).
		Set("active", user.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID})

	if user.Name != "" {
		queryBuilder = queryBuilder.Set("name", user.Name)
	}

	if user.Email != "" {
		queryBuilder = queryBuilder.Set("email", user.Email)
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.Role != "" {
		queryBuilder = queryBuilder.Set("role", user.Role)
	}

	profilesSQL, profilesArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(profilesSQL, profilesArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *userRepository) DeleteUser(userID int) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return deleteUserData(tx, userID)
	})
}

// deleteUserData remove os vínculos de marca e o perfil na mesma transação
func deleteUserData(q postgres.Queryer, userID int) error {
	linksSQL, linksArgs, err := squirrel.
		Delete(userBrandsTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := q.Exec(linksSQL, linksArgs...); err != nil {
		return fmt.Errorf("erro ao remover vínculos de marca: %w", err)
	}

	profilesSQL, profilesArgs, err := squirrel.
		Delete(profilesTable).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := q.Exec(profilesSQL, profilesArgs...); err != nil {
		return fmt.Errorf("erro ao excluir perfil: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.conn.QueryRow("SELECT id, name, email, password_hash, role, active, created_at, updated_at FROM profiles WHERE email = $1", email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	r.fillAllowedBrands(&user)

	return &user, nil
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	var user domain.User
	err := r.conn.QueryRow("SELECT id, name, email, password_hash, role, active, created_at, updated_at FROM profiles WHERE id = $1", userID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	r.fillAllowedBrands(&user)

	return &user, nil
}

func (r *userRepository) ListUser() ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select("id", "name", "email", "role", "active", "created_at", "updated_at").
		From(profilesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	profilesSQL, profilesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(profilesSQL, profilesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.Active,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}

		r.fillAllowedBrands(&user)

		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// fillAllowedBrands busca as marcas vinculadas; em caso de erro segue com a lista vazia
func (r *userRepository) fillAllowedBrands(user *domain.User) {
	allowedBrands, err := r.GetAllowedBrands(user.ID)
	if err != nil {
		logrus.Warnf("Erro ao buscar marcas vinculadas para o usuário %d: %v", user.ID, err)
		return
	}
	user.AllowedBrands = allowedBrands
}

func (r *userRepository) GetAllowedBrands(userID int) ([]int, error) {
	query := squirrel.
		Select("brand_id").
		From(userBrandsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("brand_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar marcas vinculadas: %w", err)
	}
	defer rows.Close()

	var allowedBrands []int
	for rows.Next() {
		var brandID int
		if err := rows.Scan(&brandID); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		allowedBrands = append(allowedBrands, brandID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return allowedBrands, nil
}

func (r *userRepository) LinkBrand(userID, brandID int) error {
	query := squirrel.
		Insert(userBrandsTable).
		Columns("user_id", "brand_id").
		Values(userID, brandID).
		Suffix("ON CONFLICT (user_id, brand_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(sqlStr, args...)
	if err != nil {
		return fmt.Errorf("erro ao vincular marca: %w", err)
	}

	return nil
}

func (r *userRepository) UnlinkBrand(userID, brandID int) error {
	query := squirrel.
		Delete(userBrandsTable).
		Where(squirrel.Eq{"user_id": userID, "brand_id": brandID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(sqlStr, args...)
	if err != nil {
		return fmt.Errorf("erro ao desvincular marca: %w", err)
	}

	return nil
}
