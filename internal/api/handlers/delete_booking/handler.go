package delete_booking

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
	msgInvalidBookingID = "identificador de reserva inválido"
	msgBookingNotFound  = "reserva não encontrada"
	msgPermissionDenied = "somente o professor responsável ou um administrador pode excluir a reserva"
	msgUnauthenticated  = "usuário não autenticado"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Delete(r.Context(), bookingID, &models.DeleteBookingRequest{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrPermissionDenied):
			h.logger.Warn("DELETE /bookings/{id} - Permission denied: booking_id=%s, actor=%s role=%s",
				bookingID, actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking %s deleted by actor=%s", bookingID, actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
