package list_users

import (
	"errors"
	"net/http"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users/models"
)

const (
	msgPermissionDenied = "apenas administradores podem listar usuários"
	msgInvalidRole      = "papel inválido, esperado STUDENT, PROFESSOR ou ADMIN"
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

// Handle GET /api/v1/users?role=PROFESSOR
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	req := &models.ListUsersRequest{ActorRole: actor.Role}
	if raw := r.URL.Query().Get("role"); raw != "" {
		req.Role = &raw
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrPermissionDenied):
			h.logger.Warn("GET /users - Permission denied: actor=%s role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("GET /users - Invalid role filter: role=%q", r.URL.Query().Get("role"))
			handlers.RespondBadRequest(w, msgInvalidRole)

		default:
			h.logger.Error("GET /users - Failed to list users: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users - Returned %d user(s)", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}
