package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/brandpicking"
	"github.com/iqol/brand-pulse-api/pkg/apiErrors"
	"github.com/iqol/brand-pulse-api/pkg/middleware"
)

// ListBrands retorna as marcas visíveis para o usuário logado
func ListBrands(service brandpicking.BrandPicker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		brands, err := service.ListVisibleBrands(userClaims)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar marcas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(brands)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
