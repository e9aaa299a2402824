// Package authorizing concentra as regras de acesso por marca e de posse de
// action items. É o único ponto de verdade: toda rota que devolve ou grava
// dados de marca passa por aqui, no servidor, antes de qualquer resposta.
package authorizing

import (
	"github.com/iqol/brand-pulse-api/internal/domain"
)

// AccessMode distingue leitura de escrita. Hoje a regra é idêntica para os
// dois modos; os chamadores já informam o modo correto caso a política
// precise divergir no futuro.
type AccessMode int

const (
	Read AccessMode = iota
	Write
)

// CanAccess decide se o portador do token pode acessar a marca.
// Admin tem acesso irrestrito, independente da lista allowed_brands.
// Função pura, sem efeitos colaterais.
func CanAccess(claims *domain.Claims, brandID int, _ AccessMode) bool {
	if claims == nil {
		return false
	}

	if claims.IsAdmin() {
		return true
	}

	for _, id := range claims.UserAllowedBrands {
		if id == brandID {
			return true
		}
	}

	return false
}

// VisibleBrands devolve a subsequência de marcas que o portador pode ver,
// preservando a ordem de entrada. Admin recebe a lista intacta.
func VisibleBrands(claims *domain.Claims, brands []*domain.Brand) []*domain.Brand {
	if claims != nil && claims.IsAdmin() {
		return brands
	}

	visible := make([]*domain.Brand, 0, len(brands))
	for _, brand := range brands {
		if CanAccess(claims, brand.ID, Read) {
			visible = append(visible, brand)
		}
	}

	return visible
}

// ScopeMetrics filtra os registros de métricas para as marcas visíveis,
// preservando a ordem
func ScopeMetrics(claims *domain.Claims, metrics []*domain.DailyMetric) []*domain.DailyMetric {
	if claims != nil && claims.IsAdmin() {
		return metrics
	}

	scoped := make([]*domain.DailyMetric, 0, len(metrics))
	for _, metric := range metrics {
		if CanAccess(claims, metric.BrandID, Read) {
			scoped = append(scoped, metric)
		}
	}

	return scoped
}

// ScopeBlogs filtra os blogs para as marcas visíveis, preservando a ordem
func ScopeBlogs(claims *domain.Claims, blogs []*domain.Blog) []*domain.Blog {
	if claims != nil && claims.IsAdmin() {
		return blogs
	}

	scoped := make([]*domain.Blog, 0, len(blogs))
	for _, blog := range blogs {
		if CanAccess(claims, blog.BrandID, Read) {
			scoped = append(scoped, blog)
		}
	}

	return scoped
}

// ScopePosts filtra os posts sociais para as marcas visíveis, preservando a ordem
func ScopePosts(claims *domain.Claims, posts []*domain.SocialPost) []*domain.SocialPost {
	if claims != nil && claims.IsAdmin() {
		return posts
	}

	scoped := make([]*domain.SocialPost, 0, len(posts))
	for _, post := range posts {
		if CanAccess(claims, post.BrandID, Read) {
			scoped = append(scoped, post)
		}
	}

	return scoped
}
