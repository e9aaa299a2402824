package domain

import "time"

// Plataformas aceitas para posts sociais
const (
	PlatformInstagram = "Instagram"
	PlatformLinkedin  = "LinkedIn"
)

type Blog struct {
	ID               int       `json:"id"`
	BrandID          int       `json:"brand_id"`
	PublishedDate    string    `json:"published_date"`
	Title            string    `json:"title"`
	BlogLink         string    `json:"blog_link"`
	Views            int       `json:"views"`
	AIDetectionScore *int      `json:"ai_detection_score"`
	BrandName        string    `json:"brand_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type SocialPost struct {
	ID               int       `json:"id"`
	BrandID          int       `json:"brand_id"`
	Platform         string    `json:"platform"`
	PostedDate       string    `json:"posted_date"`
	PostName         string    `json:"post_name"`
	PostLink         string    `json:"post_link"`
	ImpressionsViews int       `json:"impressions_views"`
	Likes            int       `json:"likes"`
	BrandName        string    `json:"brand_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// PlatformPosts separa o top de posts de uma marca por plataforma
type PlatformPosts struct {
	Linkedin  []*SocialPost `json:"linkedin"`
	Instagram []*SocialPost `json:"instagram"`
}
