package domain

import "time"

// DailyMetric é o registro diário de métricas de uma marca. Não existe
// unicidade por (brand_id, date): datas duplicadas são permitidas e o
// agregador resolve o desempate por id.
type DailyMetric struct {
	ID                  int       `json:"id"`
	BrandID             int       `json:"brand_id"`
	Date                string    `json:"date"`
	WebsiteVisits       int       `json:"website_visits"`
	LinkedinImpressions int       `json:"linkedin_impressions"`
	LinkedinFollowers   int       `json:"linkedin_followers"`
	InstagramViews      int       `json:"instagram_views"`
	InstagramFollowers  int       `json:"instagram_followers"`
	BrandName           string    `json:"brand_name,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// BrandStats agrega o registro mais recente de uma marca com a variação
// percentual em relação ao registro anterior.
type BrandStats struct {
	BrandID             int    `json:"brand_id"`
	Date                string `json:"date,omitempty"`
	WebsiteVisits       int    `json:"website_visits"`
	LinkedinImpressions int    `json:"linkedin_impressions"`
	LinkedinFollowers   int    `json:"linkedin_followers"`
	InstagramViews      int    `json:"instagram_views"`
	InstagramFollowers  int    `json:"instagram_followers"`
	WebsiteChange       int    `json:"website_change"`
	LinkedinImpChange   int    `json:"linkedin_imp_change"`
	LinkedinFolChange   int    `json:"linkedin_fol_change"`
	InstaViewChange     int    `json:"insta_view_change"`
	InstaFolChange      int    `json:"insta_fol_change"`
}
