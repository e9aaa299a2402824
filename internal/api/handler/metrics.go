package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/tracking"
	"github.com/iqol/brand-pulse-api/pkg/apiErrors"
	"github.com/iqol/brand-pulse-api/pkg/middleware"
)

// MetricPayload é o corpo aceito para criação e atualização de métricas diárias
type MetricPayload struct {
	BrandID             int    `json:"brand_id" validate:"required,gt=0"`
	Date                string `json:"date" validate:"required,datetime=2006-01-02"`
	WebsiteVisits       int    `json:"website_visits" validate:"gte=0"`
	LinkedinImpressions int    `json:"linkedin_impressions" validate:"gte=0"`
	LinkedinFollowers   int    `json:"linkedin_followers" validate:"gte=0"`
	InstagramViews      int    `json:"instagram_views" validate:"gte=0"`
	InstagramFollowers  int    `json:"instagram_followers" validate:"gte=0"`
}

func (p *MetricPayload) toDomain(id int) *domain.DailyMetric {
	return &domain.DailyMetric{
		ID:                  id,
		BrandID:             p.BrandID,
		Date:                p.Date,
		WebsiteVisits:       p.WebsiteVisits,
		LinkedinImpressions: p.LinkedinImpressions,
		LinkedinFollowers:   p.LinkedinFollowers,
		InstagramViews:      p.InstagramViews,
		InstagramFollowers:  p.InstagramFollowers,
	}
}

// ListRecentMetrics lista os lançamentos mais recentes das marcas visíveis
func ListRecentMetrics(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		metrics, err := service.RecentMetrics(userClaims)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(metrics)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateMetric grava um novo lançamento diário de métricas
func CreateMetric(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateMetric")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var payload MetricPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Marca e data são obrigatórias e os valores não podem ser negativos", err.Error())
			return
		}

		created, err := service.CreateMetric(userClaims, payload.toDomain(0))
		if err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao criar métrica")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(created)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateMetric atualiza um lançamento existente
func UpdateMetric(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateMetric")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id, err := recordIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do registro inválido", nil)
			return
		}

		var payload MetricPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Marca e data são obrigatórias e os valores não podem ser negativos", err.Error())
			return
		}

		if err := service.UpdateMetric(userClaims, payload.toDomain(id)); err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao atualizar métrica")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteMetric remove um lançamento
func DeleteMetric(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteMetric")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id, err := recordIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do registro inválido", nil)
			return
		}

		if err := service.DeleteMetric(userClaims, id); err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao remover métrica")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func recordIDFromPath(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		return 0, errors.New("ID do registro não fornecido")
	}

	return strconv.Atoi(idStr)
}

// handleTrackingError converte erros da camada de registros na resposta HTTP adequada
func handleTrackingError(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, tracking.ErrBrandForbidden):
		apiErrors.WriteError(w, apiErrors.ErrBrandForbidden, "Marca fora da lista permitida do usuário", nil)

	case errors.Is(err, tracking.ErrRecordNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Registro não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallbackMsg, nil)
	}
}
