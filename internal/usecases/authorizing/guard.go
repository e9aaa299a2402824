package authorizing

import (
	"github.com/iqol/brand-pulse-api/internal/domain"
)

// AssigneeFor resolve o responsável final de um action item. Admin pode
// atribuir para qualquer pessoa; qualquer outro role tem o valor proposto
// silenciosamente sobrescrito pelo próprio nome. Roda no servidor: o valor
// enviado pelo cliente nunca é confiável.
func AssigneeFor(claims *domain.Claims, proposedAssignee string) string {
	if claims.IsAdmin() {
		return proposedAssignee
	}

	return claims.UserName
}

// CanDeleteItem decide se o portador pode excluir o action item: admin ou o
// próprio responsável
func CanDeleteItem(claims *domain.Claims, item *domain.ActionItem) bool {
	if claims.IsAdmin() {
		return true
	}

	return claims.UserName == item.AssignedTo
}
