package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/bookings"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/bookings/models"
)

const (
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidStatus      = "status inválido, esperado PENDING, APPROVED ou REJECTED"
	msgInvalidProfessorID = "identificador de professor inválido"
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

// Handle GET /api/v1/bookings?date=YYYY-MM-DD&status=PENDING&professorId=<uuid>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("professorId"); raw != "" {
		professorID, err := uuid.Parse(raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid professor id filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessorID)
			return
		}
		req.ProfessorID = &professorID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidStatus) {
			h.logger.Warn("GET /bookings - Invalid status filter: status=%s", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Returned %d booking(s)", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
