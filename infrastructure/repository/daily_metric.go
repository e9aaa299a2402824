package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/iqol/brand-pulse-api/infrastructure/database/postgres"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

const dailyMetricsTable = "daily_metrics"

//go:generate mockgen -source=daily_metric.go -destination=mocks/daily_metric_mock.go -package=mocks

type MetricRepository interface {
	ListRecent(limit uint64) ([]*domain.DailyMetric, error)
	ListAllOrdered() ([]*domain.DailyMetric, error)
	GetByID(metricID int) (*domain.DailyMetric, error)
	Create(metric *domain.DailyMetric) (*domain.DailyMetric, error)
	Update(metric *domain.DailyMetric) error
	Delete(metricID int) error
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

const dailyMetricColumns = "m.id, m.brand_id, m.date, m.website_visits, m.linkedin_impressions, m.linkedin_followers, m.instagram_views, m.instagram_followers, b.name, m.created_at"

// ListRecent devolve os lançamentos mais novos primeiro, com o nome da marca
func (r *metricRepository) ListRecent(limit uint64) ([]*domain.DailyMetric, error) {
	queryBuilder := squirrel.
		Select(dailyMetricColumns).
		From(dailyMetricsTable + " m").
		Join(brandsTable + " b ON b.id = m.brand_id").
		OrderBy("m.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	metricsSQL, metricsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryMetrics(metricsSQL, metricsArgs...)
}

// ListAllOrdered devolve todos os registros na ordem que o agregador espera:
// data decrescente com desempate por id decrescente
func (r *metricRepository) ListAllOrdered() ([]*domain.DailyMetric, error) {
	queryBuilder := squirrel.
		Select(dailyMetricColumns).
		From(dailyMetricsTable + " m").
		Join(brandsTable + " b ON b.id = m.brand_id").
		OrderBy("m.date DESC", "m.id DESC").
		PlaceholderFormat(squirrel.Dollar)

	metricsSQL, metricsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryMetrics(metricsSQL, metricsArgs...)
}

func (r *metricRepository) queryMetrics(query string, args ...interface{}) ([]*domain.DailyMetric, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []*domain.DailyMetric
	for rows.Next() {
		var metric domain.DailyMetric
		var date time.Time
		if err := rows.Scan(
			&metric.ID,
			&metric.BrandID,
			&date,
			&metric.WebsiteVisits,
			&metric.LinkedinImpressions,
			&metric.LinkedinFollowers,
			&metric.InstagramViews,
			&metric.InstagramFollowers,
			&metric.BrandName,
			&metric.CreatedAt,
		); err != nil {
			return nil, err
		}
		metric.Date = utils.FormatDate(date)
		metrics = append(metrics, &metric)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metrics, nil
}

func (r *metricRepository) GetByID(metricID int) (*domain.DailyMetric, error) {
	var metric domain.DailyMetric
	var date time.Time
	err := r.conn.QueryRow(
		"SELECT id, brand_id, date, website_visits, linkedin_impressions, linkedin_followers, instagram_views, instagram_followers, created_at FROM daily_metrics WHERE id = $1",
		metricID,
	).Scan(
		&metric.ID,
		&metric.BrandID,
		&date,
		&metric.WebsiteVisits,
		&metric.LinkedinImpressions,
		&metric.LinkedinFollowers,
		&metric.InstagramViews,
		&metric.InstagramFollowers,
		&metric.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	metric.Date = utils.FormatDate(date)

	return &metric, nil
}

func (r *metricRepository) Create(metric *domain.DailyMetric) (*domain.DailyMetric, error) {
	queryBuilder := squirrel.
		Insert(dailyMetricsTable).
		Columns("brand_id", "date", "website_visits", "linkedin_impressions", "linkedin_followers", "instagram_views", "instagram_followers").
		Values(
			metric.BrandID,
			metric.Date,
			metric.WebsiteVisits,
			metric.LinkedinImpressions,
			metric.LinkedinFollowers,
			metric.InstagramViews,
			metric.InstagramFollowers,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	metricsSQL, metricsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(metricsSQL, metricsArgs...).Scan(&metric.ID)
	if err != nil {
		return nil, err
	}

	return metric, nil
}

func (r *metricRepository) Update(metric *domain.DailyMetric) error {
	queryBuilder := squirrel.
		Update(dailyMetricsTable).
		Set("brand_id", metric.BrandID).
		Set("date", metric.Date).
		Set("website_visits", metric.WebsiteVisits).
		Set("linkedin_impressions", metric.LinkedinImpressions).
		Set("linkedin_followers", metric.LinkedinFollowers).
		Set("instagram_views", metric.InstagramViews).
		Set("instagram_followers", metric.InstagramFollowers).
		Where(squirrel.Eq{"id": metric.ID}).
		PlaceholderFormat(squirrel.Dollar)

	metricsSQL, metricsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(metricsSQL, metricsArgs...)
	return err
}

func (r *metricRepository) Delete(metricID int) error {
	queryBuilder := squirrel.
		Delete(dailyMetricsTable).
		Where(squirrel.Eq{"id": metricID}).
		PlaceholderFormat(squirrel.Dollar)

	metricsSQL, metricsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(metricsSQL, metricsArgs...)
	return err
}
