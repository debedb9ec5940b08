package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/bookings"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidBookingID   = "identificador de reserva inválido"
	msgInvalidStatus      = "status inválido, esperado APPROVED ou REJECTED"
	msgBookingNotFound    = "reserva não encontrada"
	msgPermissionDenied   = "apenas administradores podem aprovar ou rejeitar reservas"
	msgAlreadyDecided     = "reserva já foi aprovada ou rejeitada"
	msgUnauthenticated    = "usuário não autenticado"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, &models.UpdateStatusRequest{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: booking_id=%s, status=%q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrPermissionDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Permission denied: booking_id=%s, actor=%s role=%s",
				bookingID, actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking already decided: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyDecided)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Booking %s is now %s (actor=%s)", bookingID, result.Status, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
