package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iqol/brand-pulse-api/internal/domain"
)

func TestAggregateBrand(t *testing.T) {
	tests := []struct {
		name    string
		metrics []*domain.DailyMetric
		brandID int
		want    *domain.BrandStats
	}{
		{
			name: "variação positiva entre os dois lançamentos mais recentes",
			metrics: []*domain.DailyMetric{
				{ID: 1, BrandID: 1, Date: "2026-08-27", WebsiteVisits: 100, LinkedinImpressions: 200, LinkedinFollowers: 50, InstagramViews: 400, InstagramFollowers: 80},
				{ID: 2, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 150, LinkedinImpressions: 100, LinkedinFollowers: 50, InstagramViews: 500, InstagramFollowers: 84},
			},
			brandID: 1,
			want: &domain.BrandStats{
				BrandID:             1,
				Date:                "2026-08-28",
				WebsiteVisits:       150,
				LinkedinImpressions: 100,
				LinkedinFollowers:   50,
				InstagramViews:      500,
				InstagramFollowers:  84,
				WebsiteChange:       50,  // (150-100)/100
				LinkedinImpChange:   -50, // (100-200)/200
				LinkedinFolChange:   0,   // valores iguais
				InstaViewChange:     25,  // (500-400)/400
				InstaFolChange:      5,   // (84-80)/80
			},
		},
		{
			name: "lançamento único zera todas as variações",
			metrics: []*domain.DailyMetric{
				{ID: 1, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 150},
			},
			brandID: 1,
			want: &domain.BrandStats{
				BrandID:       1,
				Date:          "2026-08-28",
				WebsiteVisits: 150,
			},
		},
		{
			name: "anterior com zero devolve variação zero, nunca infinito",
			metrics: []*domain.DailyMetric{
				{ID: 1, BrandID: 1, Date: "2026-08-27", WebsiteVisits: 0},
				{ID: 2, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 300},
			},
			brandID: 1,
			want: &domain.BrandStats{
				BrandID:       1,
				Date:          "2026-08-28",
				WebsiteVisits: 300,
			},
		},
		{
			name: "datas duplicadas desempatam pelo maior id",
			metrics: []*domain.DailyMetric{
				{ID: 5, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 100},
				{ID: 9, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 200},
				{ID: 3, BrandID: 1, Date: "2026-08-27", WebsiteVisits: 50},
			},
			brandID: 1,
			want: &domain.BrandStats{
				BrandID:       1,
				Date:          "2026-08-28",
				WebsiteVisits: 200,
				WebsiteChange: 100, // contra o id 5, também de 28/08
			},
		},
		{
			name: "registros de outras marcas são ignorados",
			metrics: []*domain.DailyMetric{
				{ID: 1, BrandID: 2, Date: "2026-08-28", WebsiteVisits: 999},
				{ID: 2, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 150},
			},
			brandID: 1,
			want: &domain.BrandStats{
				BrandID:       1,
				Date:          "2026-08-28",
				WebsiteVisits: 150,
			},
		},
		{
			name:    "marca sem lançamentos devolve estatística zerada",
			metrics: []*domain.DailyMetric{},
			brandID: 1,
			want:    &domain.BrandStats{BrandID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateBrand(tt.metrics, tt.brandID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregateBrandIsPure(t *testing.T) {
	metrics := []*domain.DailyMetric{
		{ID: 2, BrandID: 1, Date: "2026-08-28", WebsiteVisits: 150},
		{ID: 1, BrandID: 1, Date: "2026-08-27", WebsiteVisits: 100},
	}

	first := AggregateBrand(metrics, 1)
	second := AggregateBrand(metrics, 1)

	assert.Equal(t, first, second)
	// A entrada não é reordenada
	assert.Equal(t, 2, metrics[0].ID)
	assert.Equal(t, 1, metrics[1].ID)
}

func TestTopBlogs(t *testing.T) {
	blogs := []*domain.Blog{
		{ID: 1, BrandID: 1, Views: 10},
		{ID: 2, BrandID: 1, Views: 60},
		{ID: 3, BrandID: 2, Views: 999},
		{ID: 4, BrandID: 1, Views: 30},
		{ID: 5, BrandID: 1, Views: 50},
		{ID: 6, BrandID: 1, Views: 40},
		{ID: 7, BrandID: 1, Views: 20},
	}

	top := TopBlogs(blogs, 1)

	// Corta em cinco, mais visto primeiro, outras marcas fora
	assert.Len(t, top, 5)
	assert.Equal(t, []int{60, 50, 40, 30, 20}, []int{top[0].Views, top[1].Views, top[2].Views, top[3].Views, top[4].Views})
}

func TestTopPosts(t *testing.T) {
	posts := []*domain.SocialPost{
		{ID: 1, BrandID: 1, Platform: domain.PlatformLinkedin, ImpressionsViews: 100},
		{ID: 2, BrandID: 1, Platform: domain.PlatformInstagram, ImpressionsViews: 600},
		{ID: 3, BrandID: 1, Platform: domain.PlatformLinkedin, ImpressionsViews: 500},
		{ID: 4, BrandID: 1, Platform: domain.PlatformInstagram, ImpressionsViews: 400},
		{ID: 5, BrandID: 1, Platform: domain.PlatformLinkedin, ImpressionsViews: 300},
		{ID: 6, BrandID: 1, Platform: domain.PlatformInstagram, ImpressionsViews: 200},
		{ID: 7, BrandID: 2, Platform: domain.PlatformInstagram, ImpressionsViews: 999},
	}

	result := TopPosts(posts, 1)

	// O corte em cinco acontece antes da separação por plataforma: o post de
	// 100 impressões fica de fora mesmo havendo espaço no LinkedIn
	assert.Len(t, result.Linkedin, 2)
	assert.Len(t, result.Instagram, 3)
	assert.Equal(t, 500, result.Linkedin[0].ImpressionsViews)
	assert.Equal(t, 300, result.Linkedin[1].ImpressionsViews)
	assert.Equal(t, 600, result.Instagram[0].ImpressionsViews)
	assert.Equal(t, 400, result.Instagram[1].ImpressionsViews)
	assert.Equal(t, 200, result.Instagram[2].ImpressionsViews)
}

func TestTopPostsEmptyPlatformsAreLists(t *testing.T) {
	result := TopPosts(nil, 1)

	assert.NotNil(t, result.Linkedin)
	assert.NotNil(t, result.Instagram)
	assert.Empty(t, result.Linkedin)
	assert.Empty(t, result.Instagram)
}
