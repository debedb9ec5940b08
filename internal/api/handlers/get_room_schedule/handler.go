package get_room_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	getRoomSchedule "github.com/VitorMachadoSilva/ReservationSystem/internal/usecase/get_room_schedule"
)

const (
	msgInvalidRoomID = "identificador de sala inválido"
	msgMissingDate   = "parâmetro date é obrigatório"
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
	msgRoomNotFound  = "sala não encontrada"
)

type Handler struct {
	useCase GetRoomScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(mux.Vars(r)["roomId"])
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomSchedule.Request{
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRoomSchedule.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/schedule - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomSchedule.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/schedule - Invalid input: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/{id}/schedule - Failed to build schedule: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/schedule - room_id=%s, date=%s, occupied=%d, free=%d",
		roomID, rawDate, len(result.Occupied), len(result.Free))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
