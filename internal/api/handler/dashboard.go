package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/reporting"
	"github.com/iqol/brand-pulse-api/pkg/apiErrors"
	"github.com/iqol/brand-pulse-api/pkg/middleware"
)

// GetDashboard monta a visão consolidada do dashboard: estatísticas com
// variação percentual, top de blogs e top de posts por plataforma, apenas
// das marcas visíveis para o usuário logado.
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dashboard, err := service.Overview(userClaims)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(dashboard)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
