package authorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iqol/brand-pulse-api/internal/domain"
)

func TestAssigneeFor(t *testing.T) {
	t.Run("admin atribui para qualquer pessoa", func(t *testing.T) {
		got := AssigneeFor(adminClaims(), "Carla Terceira")
		assert.Equal(t, "Carla Terceira", got)
	})

	t.Run("admin pode deixar o responsável em branco", func(t *testing.T) {
		got := AssigneeFor(adminClaims(), "")
		assert.Equal(t, "", got)
	})

	t.Run("usuário comum é sobrescrito pelo próprio nome", func(t *testing.T) {
		got := AssigneeFor(userClaims(1), "Carla Terceira")
		assert.Equal(t, "Bruno Comum", got)
	})

	t.Run("usuário comum sem proposta assume a própria tarefa", func(t *testing.T) {
		got := AssigneeFor(userClaims(1), "")
		assert.Equal(t, "Bruno Comum", got)
	})
}

func TestCanDeleteItem(t *testing.T) {
	item := &domain.ActionItem{ID: 7, AssignedTo: "Bruno Comum", Task: "Revisar campanha"}

	t.Run("admin exclui qualquer item", func(t *testing.T) {
		assert.True(t, CanDeleteItem(adminClaims(), item))
	})

	t.Run("responsável exclui o próprio item", func(t *testing.T) {
		assert.True(t, CanDeleteItem(userClaims(1), item))
	})

	t.Run("usuário comum não exclui item de terceiro", func(t *testing.T) {
		other := &domain.Claims{UserName: "Carla Terceira", UserRole: domain.RoleUser}
		assert.False(t, CanDeleteItem(other, item))
	})
}
