package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/iqol/brand-pulse-api/infrastructure/database/postgres"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

const socialPostsTable = "social_posts"

//go:generate mockgen -source=social_post.go -destination=mocks/social_post_mock.go -package=mocks

type SocialPostRepository interface {
	ListRecent(limit uint64) ([]*domain.SocialPost, error)
	ListAllByImpressions() ([]*domain.SocialPost, error)
	GetByID(postID int) (*domain.SocialPost, error)
	Create(post *domain.SocialPost) (*domain.SocialPost, error)
	Update(post *domain.SocialPost) error
	Delete(postID int) error
}

type socialPostRepository struct {
	conn *postgres.Connection
}

func NewSocialPostRepository(conn *postgres.Connection) SocialPostRepository {
	return &socialPostRepository{
		conn: conn,
	}
}

const socialPostColumns = "p.id, p.brand_id, p.platform, p.posted_date, p.post_name, p.post_link, p.impressions_views, p.likes, b.name, p.created_at"

func (r *socialPostRepository) ListRecent(limit uint64) ([]*domain.SocialPost, error) {
	queryBuilder := squirrel.
		Select(socialPostColumns).
		From(socialPostsTable + " p").
		Join(brandsTable + " b ON b.id = p.brand_id").
		OrderBy("p.posted_date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	postsSQL, postsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryPosts(postsSQL, postsArgs...)
}

// ListAllByImpressions devolve todos os posts do mais visto para o menos visto
func (r *socialPostRepository) ListAllByImpressions() ([]*domain.SocialPost, error) {
	queryBuilder := squirrel.
		Select(socialPostColumns).
		From(socialPostsTable + " p").
		Join(brandsTable + " b ON b.id = p.brand_id").
		OrderBy("p.impressions_views DESC").
		PlaceholderFormat(squirrel.Dollar)

	postsSQL, postsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryPosts(postsSQL, postsArgs...)
}

func (r *socialPostRepository) queryPosts(query string, args ...interface{}) ([]*domain.SocialPost, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.SocialPost
	for rows.Next() {
		var post domain.SocialPost
		var postedDate time.Time
		if err := rows.Scan(
			&post.ID,
			&post.BrandID,
			&post.Platform,
			&postedDate,
			&post.PostName,
			&post.PostLink,
			&post.ImpressionsViews,
			&post.Likes,
			&post.BrandName,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		post.PostedDate = utils.FormatDate(postedDate)
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *socialPostRepository) GetByID(postID int) (*domain.SocialPost, error) {
	var post domain.SocialPost
	var postedDate time.Time
	err := r.conn.QueryRow(
		"SELECT id, brand_id, platform, posted_date, post_name, post_link, impressions_views, likes, created_at FROM social_posts WHERE id = $1",
		postID,
	).Scan(
		&post.ID,
		&post.BrandID,
		&post.Platform,
		&postedDate,
		&post.PostName,
		&post.PostLink,
		&post.ImpressionsViews,
		&post.Likes,
		&post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	post.PostedDate = utils.FormatDate(postedDate)

	return &post, nil
}

func (r *socialPostRepository) Create(post *domain.SocialPost) (*domain.SocialPost, error) {
	queryBuilder := squirrel.
		Insert(socialPostsTable).
		Columns("brand_id", "platform", "posted_date", "post_name", "post_link", "impressions_views", "likes").
		Values(post.BrandID, post.Platform, post.PostedDate, post.PostName, post.PostLink, post.ImpressionsViews, post.Likes).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	postsSQL, postsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(postsSQL, postsArgs...).Scan(&post.ID)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *socialPostRepository) Update(post *domain.SocialPost) error {
	queryBuilder := squirrel.
		Update(socialPostsTable).
		Set("brand_id", post.BrandID).
		Set("platform", post.Platform).
		Set("posted_date", post.PostedDate).
		Set("post_name", post.PostName).
		Set("post_link", post.PostLink).
		Set("impressions_views", post.ImpressionsViews).
		Set("likes", post.Likes).
		Where(squirrel.Eq{"id": post.ID}).
		PlaceholderFormat(squirrel.Dollar)

	postsSQL, postsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(postsSQL, postsArgs...)
	return err
}

func (r *socialPostRepository) Delete(postID int) error {
	queryBuilder := squirrel.
		Delete(socialPostsTable).
		Where(squirrel.Eq{"id": postID}).
		PlaceholderFormat(squirrel.Dollar)

	postsSQL, postsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(postsSQL, postsArgs...)
	return err
}
