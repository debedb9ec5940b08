package create_room

import (
	"errors"
	"net/http"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgPermissionDenied   = "apenas administradores podem cadastrar salas"
	msgDuplicateName      = "já existe uma sala com esse nome"
	msgInvalidInput       = "dados da sala inválidos"
	msgUnauthenticated    = "usuário não autenticado"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(actor.Role))
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrPermissionDenied):
			h.logger.Warn("POST /rooms - Permission denied: actor=%s role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, rooms.ErrDuplicateName):
			h.logger.Warn("POST /rooms - Duplicate room name: name=%q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms - Failed to create room: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room_id=%s, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
