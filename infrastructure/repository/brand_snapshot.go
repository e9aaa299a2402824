package repository

import (
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/iqol/brand-pulse-api/infrastructure/database/postgres"
	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

const brandSnapshotsTable = "brand_snapshots"

//go:generate mockgen -source=brand_snapshot.go -destination=mocks/brand_snapshot_mock.go -package=mocks

type BrandSnapshotRepository interface {
	SaveOrUpdateSnapshot(snapshot *domain.BrandSnapshot) error
	ListByDate(snapshotDate string) ([]*domain.BrandSnapshot, error)
}

type brandSnapshotRepository struct {
	conn *postgres.Connection
}

func NewBrandSnapshotRepository(conn *postgres.Connection) BrandSnapshotRepository {
	return &brandSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdateSnapshot grava o resultado do digest; um snapshot por (marca, dia)
func (r *brandSnapshotRepository) SaveOrUpdateSnapshot(snapshot *domain.BrandSnapshot) error {
	queryBuilder := squirrel.
		Insert(brandSnapshotsTable).
		Columns(
			"brand_id", "snapshot_date", "run_id",
			"website_visits", "linkedin_impressions", "linkedin_followers", "instagram_views", "instagram_followers",
			"website_change", "linkedin_imp_change", "linkedin_fol_change", "insta_view_change", "insta_fol_change",
		).
		Values(
			snapshot.BrandID, snapshot.SnapshotDate, snapshot.RunID,
			snapshot.Stats.WebsiteVisits, snapshot.Stats.LinkedinImpressions, snapshot.Stats.LinkedinFollowers,
			snapshot.Stats.InstagramViews, snapshot.Stats.InstagramFollowers,
			snapshot.Stats.WebsiteChange, snapshot.Stats.LinkedinImpChange, snapshot.Stats.LinkedinFolChange,
			snapshot.Stats.InstaViewChange, snapshot.Stats.InstaFolChange,
		).
		Suffix(`ON CONFLICT (brand_id, snapshot_date) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			website_visits = EXCLUDED.website_visits,
			linkedin_impressions = EXCLUDED.linkedin_impressions,
			linkedin_followers = EXCLUDED.linkedin_followers,
			instagram_views = EXCLUDED.instagram_views,
			instagram_followers = EXCLUDED.instagram_followers,
			website_change = EXCLUDED.website_change,
			linkedin_imp_change = EXCLUDED.linkedin_imp_change,
			linkedin_fol_change = EXCLUDED.linkedin_fol_change,
			insta_view_change = EXCLUDED.insta_view_change,
			insta_fol_change = EXCLUDED.insta_fol_change`).
		PlaceholderFormat(squirrel.Dollar)

	snapshotsSQL, snapshotsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(snapshotsSQL, snapshotsArgs...)
	return err
}

func (r *brandSnapshotRepository) ListByDate(snapshotDate string) ([]*domain.BrandSnapshot, error) {
	queryBuilder := squirrel.
		Select(
			"id", "brand_id", "snapshot_date", "run_id",
			"website_visits", "linkedin_impressions", "linkedin_followers", "instagram_views", "instagram_followers",
			"website_change", "linkedin_imp_change", "linkedin_fol_change", "insta_view_change", "insta_fol_change",
		).
		From(brandSnapshotsTable).
		Where(squirrel.Eq{"snapshot_date": snapshotDate}).
		OrderBy("brand_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	snapshotsSQL, snapshotsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(snapshotsSQL, snapshotsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*domain.BrandSnapshot
	for rows.Next() {
		var snapshot domain.BrandSnapshot
		var snapshotDay time.Time
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.BrandID,
			&snapshotDay,
			&snapshot.RunID,
			&snapshot.Stats.WebsiteVisits,
			&snapshot.Stats.LinkedinImpressions,
			&snapshot.Stats.LinkedinFollowers,
			&snapshot.Stats.InstagramViews,
			&snapshot.Stats.InstagramFollowers,
			&snapshot.Stats.WebsiteChange,
			&snapshot.Stats.LinkedinImpChange,
			&snapshot.Stats.LinkedinFolChange,
			&snapshot.Stats.InstaViewChange,
			&snapshot.Stats.InstaFolChange,
		); err != nil {
			return nil, err
		}
		snapshot.SnapshotDate = utils.FormatDate(snapshotDay)
		snapshot.Stats.BrandID = snapshot.BrandID
		snapshots = append(snapshots, &snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
