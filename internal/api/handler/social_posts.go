package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/tracking"
	"github.com/iqol/brand-pulse-api/pkg/apiErrors"
	"github.com/iqol/brand-pulse-api/pkg/middleware"
)

// SocialPostPayload é o corpo aceito para criação e atualização de posts sociais
type SocialPostPayload struct {
	BrandID          int    `json:"brand_id" validate:"required,gt=0"`
	Platform         string `json:"platform" validate:"required,oneof=Instagram LinkedIn"`
	PostedDate       string `json:"posted_date" validate:"required,datetime=2006-01-02"`
	PostName         string `json:"post_name" validate:"required"`
	PostLink         string `json:"post_link" validate:"omitempty,url"`
	ImpressionsViews int    `json:"impressions_views" validate:"gte=0"`
	Likes            int    `json:"likes" validate:"gte=0"`
}

func (p *SocialPostPayload) toDomain(id int) *domain.SocialPost {
	return &domain.SocialPost{
		ID:               id,
		BrandID:          p.BrandID,
		Platform:         p.Platform,
		PostedDate:       p.PostedDate,
		PostName:         p.PostName,
		PostLink:         p.PostLink,
		ImpressionsViews: p.ImpressionsViews,
		Likes:            p.Likes,
	}
}

// ListRecentPosts lista os posts mais recentes das marcas visíveis
func ListRecentPosts(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		posts, err := service.RecentPosts(userClaims)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar posts", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(posts)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreatePost grava um novo post social
func CreatePost(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePost")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var payload SocialPostPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Marca, plataforma, data e nome do post são obrigatórios", err.Error())
			return
		}

		created, err := service.CreatePost(userClaims, payload.toDomain(0))
		if err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao criar post")
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

// UpdatePost atualiza um post existente
func UpdatePost(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdatePost")

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

		var payload SocialPostPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Marca, plataforma, data e nome do post são obrigatórios", err.Error())
			return
		}

		if err := service.UpdatePost(userClaims, payload.toDomain(id)); err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao atualizar post")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeletePost remove um post
func DeletePost(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePost")

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

		if err := service.DeletePost(userClaims, id); err != nil {
			logrus.Error(err)
			handleTrackingError(w, err, "Erro ao remover post")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
