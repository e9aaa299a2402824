package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iqol/brand-pulse-api/internal/domain"
	"github.com/iqol/brand-pulse-api/internal/usecases/tasking"
	"github.com/iqol/brand-pulse-api/pkg/apiErrors"
	"github.com/iqol/brand-pulse-api/pkg/middleware"
)

// ActionItemPayload é o corpo aceito para criação de action items
type ActionItemPayload struct {
	Task       string `json:"task" validate:"required"`
	DueDate    string `json:"due_date" validate:"required,datetime=2006-01-02"`
	AssignedTo string `json:"assigned_to"`
}

// ListActionItems lista as tarefas do time
func ListActionItems(service tasking.Tasker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListItems()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar action items", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(items)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateActionItem grava uma nova tarefa. O responsável informado só é
// respeitado para admins; usuários comuns assumem a própria tarefa.
func CreateActionItem(service tasking.Tasker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateActionItem")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var payload ActionItemPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := validate.Struct(payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tarefa e prazo são obrigatórios", err.Error())
			return
		}

		item := &domain.ActionItem{
			Task:       payload.Task,
			DueDate:    payload.DueDate,
			AssignedTo: payload.AssignedTo,
		}

		created, err := service.CreateItem(userClaims, item)
		if err != nil {
			logrus.Error(err)
			handleTaskingError(w, err, "Erro ao criar action item")
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

// ToggleActionItem alterna o status da tarefa entre Pending e Done
func ToggleActionItem(service tasking.Tasker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ToggleActionItem")

		id, err := recordIDFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do registro inválido", nil)
			return
		}

		item, err := service.ToggleItemStatus(id)
		if err != nil {
			logrus.Error(err)
			handleTaskingError(w, err, "Erro ao alternar status do action item")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(item)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteActionItem remove uma tarefa. Apenas admins ou o responsável podem excluir.
func DeleteActionItem(service tasking.Tasker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteActionItem")

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

		if err := service.DeleteItem(userClaims, id); err != nil {
			logrus.Error(err)
			handleTaskingError(w, err, "Erro ao remover action item")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleTaskingError converte erros da camada de tarefas na resposta HTTP adequada
func handleTaskingError(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, tasking.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, tasking.ErrInvalidDueDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, tasking.ErrItemNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Action item não encontrado", nil)

	case errors.Is(err, tasking.ErrDeleteForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallbackMsg, nil)
	}
}
