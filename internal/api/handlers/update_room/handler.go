package update_room

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidRoomID      = "identificador de sala inválido"
	msgPermissionDenied   = "apenas administradores podem editar salas"
	msgRoomNotFound       = "sala não encontrada"
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

// Handle PATCH /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id} - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), roomID, req.ToServiceRequest(actor.Role))
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrPermissionDenied):
			h.logger.Warn("PATCH /rooms/{id} - Permission denied: room_id=%s, actor=%s role=%s",
				roomID, actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrDuplicateName):
			h.logger.Warn("PATCH /rooms/{id} - Duplicate room name: room_id=%s", roomID)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PATCH /rooms/{id} - Invalid input: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /rooms/{id} - Failed to update room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id} - Room updated: room_id=%s, active=%t", roomID, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}
