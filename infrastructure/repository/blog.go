package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/iqol/brand-pulse-api/infrastructure/database/postgres"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

const blogsTable = "blogs"

//go:generate mockgen -source=blog.go -destination=mocks/blog_mock.go -package=mocks

type BlogRepository interface {
	ListRecent(limit uint64) ([]*domain.Blog, error)
	ListAllByViews() ([]*domain.Blog, error)
	GetByID(blogID int) (*domain.Blog, error)
	Create(blog *domain.Blog) (*domain.Blog, error)
	Update(blog *domain.Blog) error
	Delete(blogID int) error
}

type blogRepository struct {
	conn *postgres.Connection
}

func NewBlogRepository(conn *postgres.Connection) BlogRepository {
	return &blogRepository{
		conn: conn,
	}
}

const blogColumns = "g.id, g.brand_id, g.published_date, g.title, g.blog_link, g.views, g.ai_detection_score, b.name, g.created_at"

func (r *blogRepository) ListRecent(limit uint64) ([]*domain.Blog, error) {
	queryBuilder := squirrel.
		Select(blogColumns).
		From(blogsTable + " g").
		Join(brandsTable + " b ON b.id = g.brand_id").
		OrderBy("g.published_date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	blogsSQL, blogsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryBlogs(blogsSQL, blogsArgs...)
}

// ListAllByViews devolve todos os blogs do mais visto para o menos visto
func (r *blogRepository) ListAllByViews() ([]*domain.Blog, error) {
	queryBuilder := squirrel.
		Select(blogColumns).
		From(blogsTable + " g").
		Join(brandsTable + " b ON b.id = g.brand_id").
		OrderBy("g.views DESC").
		PlaceholderFormat(squirrel.Dollar)

	blogsSQL, blogsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryBlogs(blogsSQL, blogsArgs...)
}

func (r *blogRepository) queryBlogs(query string, args ...interface{}) ([]*domain.Blog, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*domain.Blog
	for rows.Next() {
		var blog domain.Blog
		var publishedDate time.Time
		if err := rows.Scan(
			&blog.ID,
			&blog.BrandID,
			&publishedDate,
			&blog.Title,
			&blog.BlogLink,
			&blog.Views,
			&blog.AIDetectionScore,
			&blog.BrandName,
			&blog.CreatedAt,
		); err != nil {
			return nil, err
		}
		blog.PublishedDate = utils.FormatDate(publishedDate)
		blogs = append(blogs, &blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *blogRepository) GetByID(blogID int) (*domain.Blog, error) {
	var blog domain.Blog
	var publishedDate time.Time
	err := r.conn.QueryRow(
		"SELECT id, brand_id, published_date, title, blog_link, views, ai_detection_score, created_at FROM blogs WHERE id = $1",
		blogID,
	).Scan(
		&blog.ID,
		&blog.BrandID,
		&publishedDate,
		&blog.Title,
		&blog.BlogLink,
		&blog.Views,
		&blog.AIDetectionScore,
		&blog.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	blog.PublishedDate = utils.FormatDate(publishedDate)

	return &blog, nil
}

func (r *blogRepository) Create(blog *domain.Blog) (*domain.Blog, error) {
	queryBuilder := squirrel.
		Insert(blogsTable).
		Columns("brand_id", "published_date", "title", "blog_link", "views", "ai_detection_score").
		Values(blog.BrandID, blog.PublishedDate, blog.Title, blog.BlogLink, blog.Views, blog.AIDetectionScore).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	blogsSQL, blogsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(blogsSQL, blogsArgs...).Scan(&blog.ID)
	if err != nil {
		return nil, err
	}

	return blog, nil
}

func (r *blogRepository) Update(blog *domain.Blog) error {
	queryBuilder := squirrel.
		Update(blogsTable).
		Set("brand_id", blog.BrandID).
		Set("published_date", blog.PublishedDate).
		Set("title", blog.Title).
		Set("blog_link", blog.BlogLink).
		Set("views", blog.Views).
		Set("ai_detection_score", blog.AIDetectionScore).
		Where(squirrel.Eq{"id": blog.ID}).
		PlaceholderFormat(squirrel.Dollar)

	blogsSQL, blogsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(blogsSQL, blogsArgs...)
	return err
}

func (r *blogRepository) Delete(blogID int) error {
	queryBuilder := squirrel.
		Delete(blogsTable).
		Where(squirrel.Eq{"id": blogID}).
		PlaceholderFormat(squirrel.Dollar)

	blogsSQL, blogsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(blogsSQL, blogsArgs...)
	return err
}
