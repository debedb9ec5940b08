package create_user

import (
	"errors"
	"net/http"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgPermissionDenied   = "apenas administradores podem cadastrar usuários"
	msgDuplicateUser      = "e-mail ou CPF já cadastrado"
	msgInvalidInput       = "dados do usuário inválidos"
	msgUnauthenticated    = "usuário não autenticado"
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(actor.Role))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrPermissionDenied):
			h.logger.Warn("POST /users - Permission denied: actor=%s role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, users.ErrDuplicateUser):
			h.logger.Warn("POST /users - Duplicate email or cpf: email=%s", req.Email)
			handlers.RespondConflict(w, msgDuplicateUser)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /users - Failed to create user: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created: user_id=%s, role=%s", result.ID, result.Role)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
