package list_rooms

import (
	"net/http"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms/models"
)

const msgUnauthenticated = "usuário não autenticado"

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

// Handle GET /api/v1/rooms?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListRoomsRequest{
		ActorRole:       actor.Role,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	})
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Returned %d room(s)", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
