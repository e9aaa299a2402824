package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/iqol/brand-pulse-api/infrastructure/database/postgres"
	"github.com/iqol/brand-pulse-api/internal/domain"
)

const brandsTable = "brands"

//go:generate mockgen -source=brand.go -destination=mocks/brand_mock.go -package=mocks

type BrandRepository interface {
	ListBrands() ([]*domain.Brand, error)
	GetBrandByID(brandID int) (*domain.Brand, error)
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) ListBrands() ([]*domain.Brand, error) {
	queryBuilder := squirrel.
		Select("id", "name").
		From(brandsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	brandsSQL, brandsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(brandsSQL, brandsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*domain.Brand
	for rows.Next() {
		var brand domain.Brand
		if err := rows.Scan(&brand.ID, &brand.Name); err != nil {
			return nil, err
		}
		brands = append(brands, &brand)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return brands, nil
}

func (r *brandRepository) GetBrandByID(brandID int) (*domain.Brand, error) {
	var brand domain.Brand
	err := r.conn.QueryRow("SELECT id, name FROM brands WHERE id = $1", brandID).Scan(
		&brand.ID,
		&brand.Name,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &brand, nil
}
