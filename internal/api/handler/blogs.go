package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/tracking"
	"github.com/iqol/brand-pulse-api/pkg/apiErrors"
	"github.com/iqol/brand-pulse-api/pkg/middleware"
)

// BlogPayload é o corpo aceito para criação e atualização de blogs
type BlogPayload struct {
	BrandID          int    `json:"brand_id" validate:"required,gt=0"`
	PublishedDate    string `json:"published_date" validate:"required,datetime=2006-01-02"`
	Title            string `json:"title" validate:"required"`
	BlogLink         string `json:"blog_link" validate:"omitempty,url"`
	Views            int    `json:"views" validate:"gte=0"`
	AIDetectionScore *int   `json:"ai_detection_score" validate:"omitempty,gte=0,lte=100"`
}

func (p *BlogPayload) toDomain(id int) *domain.Blog {
	return &domain.Blog{
		ID:               id,
		BrandID:          p.BrandID,
		PublishedDate:    p.PublishedDate,
		Title:            p.Title,
		BlogLink:         p.BlogLink,
		Views:            p.Views,
		AIDetectionScore: p.AIDetectionScore,
	}
}

// ListRecentBlogs lista os blogs mais recentes das marcas visíveis
func ListRecentBlogs(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		blogs, err := service.RecentBlogs(userClaims)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar blogs", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(blogs)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateBlog grava um novo blog
func CreateBlog(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateBlog")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var payload BlogPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Marca, data de publicação e título são obrigatórios", err.Error())
			return
		}

		created, err := service.CreateBlog(userClaims, payload.toDomain(0))
		if err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao criar blog")
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

// UpdateBlog atualiza um blog existente
func UpdateBlog(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateBlog")

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

		var payload BlogPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Marca, data de publicação e título são obrigatórios", err.Error())
			return
		}

		if err := service.UpdateBlog(userClaims, payload.toDomain(id)); err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao atualizar blog")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteBlog remove um blog
func DeleteBlog(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteBlog")

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

		if err := service.DeleteBlog(userClaims, id); err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao remover blog")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
