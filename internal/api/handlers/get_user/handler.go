package get_user

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users"
)

const (
	msgInvalidUserID    = "identificador de usuário inválido"
	msgUserNotFound     = "usuário não encontrado"
	msgPermissionDenied = "sem permissão para consultar este usuário"
	msgUnauthenticated  = "usuário não autenticado"
)

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

// Handle GET /api/v1/users/{userId}
// Users read their own account; administrators read anyone's.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("GET /users/{id} - Invalid user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if userID != actor.ID && !domain.CanManageUsers(actor.Role) {
		h.logger.Warn("GET /users/{id} - Permission denied: user_id=%s, actor=%s role=%s",
			userID, actor.ID, actor.Role)
		handlers.RespondForbidden(w, msgPermissionDenied)
		return
	}

	result, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("GET /users/{id} - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /users/{id} - Failed to fetch user: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
