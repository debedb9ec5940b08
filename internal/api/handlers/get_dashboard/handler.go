package get_dashboard

import (
	"net/http"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
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

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard - in_progress=%d, upcoming=%d, pending=%d",
		len(result.InProgress), len(result.Upcoming), result.PendingCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
