package reporting

import (
	"sort"

	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/pkg/utils"
)

// AggregateBrand calcula as estatísticas de uma marca a partir dos registros
// diários: valores do lançamento mais recente e variação percentual em
// relação ao anterior. Datas duplicadas são permitidas; o desempate por id
// decrescente torna a escolha de "atual" e "anterior" determinística.
// Função pura: a mesma entrada sempre produz a mesma saída.
func AggregateBrand(metrics []*domain.DailyMetric, brandID int) *domain.BrandStats {
	brandMetrics := make([]*domain.DailyMetric, 0, len(metrics))
	for _, metric := range metrics {
		if metric.BrandID == brandID {
			brandMetrics = append(brandMetrics, metric)
		}
	}

	sort.SliceStable(brandMetrics, func(i, j int) bool {
		if brandMetrics[i].Date != brandMetrics[j].Date {
			return brandMetrics[i].Date > brandMetrics[j].Date
		}
		return brandMetrics[i].ID > brandMetrics[j].ID
	})

	var current, previous domain.DailyMetric
	if len(brandMetrics) > 0 {
		current = *brandMetrics[0]
	}
	if len(brandMetrics) > 1 {
		previous = *brandMetrics[1]
	}

	return &domain.BrandStats{
		BrandID:             brandID,
		Date:                current.Date,
		WebsiteVisits:       current.WebsiteVisits,
		LinkedinImpressions: current.LinkedinImpressions,
		LinkedinFollowers:   current.LinkedinFollowers,
		InstagramViews:      current.InstagramViews,
		InstagramFollowers:  current.InstagramFollowers,
		WebsiteChange:       utils.ChangePercent(current.WebsiteVisits, previous.WebsiteVisits),
		LinkedinImpChange:   utils.ChangePercent(current.LinkedinImpressions, previous.LinkedinImpressions),
		LinkedinFolChange:   utils.ChangePercent(current.LinkedinFollowers, previous.LinkedinFollowers),
		InstaViewChange:     utils.ChangePercent(current.InstagramViews, previous.InstagramViews),
		InstaFolChange:      utils.ChangePercent(current.InstagramFollowers, previous.InstagramFollowers),
	}
}

const topLimit = 5

// TopBlogs devolve até topLimit blogs da marca, do mais visto para o menos
// visto. A entrada já vem ordenada por views do repositório; a função
// reordena mesmo assim para não depender do chamador.
func TopBlogs(blogs []*domain.Blog, brandID int) []*domain.Blog {
	return topNBlogs(blogs, brandID, topLimit)
}

func topNBlogs(blogs []*domain.Blog, brandID int, limit int) []*domain.Blog {
	top := make([]*domain.Blog, 0, limit)
	for _, blog := range blogs {
		if blog.BrandID == brandID {
			top = append(top, blog)
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Views > top[j].Views
	})

	if len(top) > limit {
		top = top[:limit]
	}

	return top
}

// TopPosts devolve até topLimit posts da marca por impressões e os separa por
// plataforma. O corte acontece antes da separação, como no dashboard: o top 5
// da marca é repartido entre LinkedIn e Instagram.
func TopPosts(posts []*domain.SocialPost, brandID int) domain.PlatformPosts {
	top := make([]*domain.SocialPost, 0, topLimit)
	for _, post := range posts {
		if post.BrandID == brandID {
			top = append(top, post)
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].ImpressionsViews > top[j].ImpressionsViews
	})

	if len(top) > topLimit {
		top = top[:topLimit]
	}

	result := domain.PlatformPosts{
		Linkedin:  make([]*domain.SocialPost, 0, len(top)),
		Instagram: make([]*domain.SocialPost, 0, len(top)),
	}

	for _, post := range top {
		switch post.Platform {
		case domain.PlatformLinkedin:
			result.Linkedin = append(result.Linkedin, post)
		case domain.PlatformInstagram:
			result.Instagram = append(result.Instagram, post)
		}
	}

	return result
}
