package update_user

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidUserID      = "identificador de usuário inválido"
	msgUserNotFound       = "usuário não encontrado"
	msgPermissionDenied   = "sem permissão para editar este usuário"
	msgInvalidInput       = "dados do usuário inválidos"
	msgUnauthenticated    = "usuário não autenticado"
)

// UpdateUserRequest HTTP request model. Only the self-service fields.
type UpdateUserRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
}

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("PATCH /users/{id} - Invalid user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &models.UpdateUserRequest{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Name:       req.Name,
		Department: req.Department,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrPermissionDenied):
			h.logger.Warn("PATCH /users/{id} - Permission denied: user_id=%s, actor=%s role=%s",
				userID, actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PATCH /users/{id} - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PATCH /users/{id} - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /users/{id} - Failed to update user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{id} - User updated: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
