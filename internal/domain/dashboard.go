package domain

// BrandOverview agrupa tudo que o dashboard mostra para uma marca
type BrandOverview struct {
	Brand    *Brand        `json:"brand"`
	Stats    *BrandStats   `json:"stats"`
	TopBlogs []*Blog       `json:"top_blogs"`
	TopPosts PlatformPosts `json:"top_posts"`
}

// DashboardResponse contém apenas as marcas visíveis para o solicitante.
// O recorte acontece no servidor, antes de qualquer dado ser serializado.
type DashboardResponse struct {
	Brands []*BrandOverview `json:"brands"`
}

// BrandSnapshot é o resultado pré-calculado do digest diário de uma marca
type BrandSnapshot struct {
	ID           int        `json:"id"`
	BrandID      int        `json:"brand_id"`
	SnapshotDate string     `json:"snapshot_date"`
	Stats        BrandStats `json:"stats"`
	RunID        string     `json:"run_id"`
}
