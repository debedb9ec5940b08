package create_booking

import (
	"errors"
	"net/http"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/handlers"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/api/middleware"
	createBooking "github.com/VitorMachadoSilva/ReservationSystem/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidRoomID      = "identificador de sala inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime        = "formato de horário inválido, esperado HH:MM"
	msgValidationFailed   = "a solicitação viola regras de reserva"
	msgConflict           = "a sala já possui reserva no horário solicitado"
	msgRoomNotFound       = "sala não encontrada"
	msgRequesterNotFound  = "usuário solicitante não encontrado"
	msgPermissionDenied   = "apenas professores e administradores podem solicitar reservas"
	msgUnauthenticated    = "usuário não autenticado"
)

var (
	errInvalidRoomID = errors.New("invalid room id")
	errInvalidDate   = errors.New("invalid date")
	errInvalidTime   = errors.New("invalid time")
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor.ID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidRoomID):
			handlers.RespondBadRequest(w, msgInvalidRoomID)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createBooking.ValidationError
		var conflictErr *createBooking.ConflictError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: requester=%s, room=%s, rules=%v",
				actor.ID, req.RoomID, err)
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:      msgValidationFailed,
				Violations: validationErr.Violations,
			})

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Time conflict: requester=%s, room=%s, date=%s %s-%s",
				actor.ID, req.RoomID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondJSON(w, http.StatusConflict, ConflictErrorResponse{
				Error:     msgConflict,
				Conflicts: conflictErr.Conflicts,
			})

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRequesterNotFound):
			h.logger.Warn("POST /bookings - Requester not found: requester=%s", actor.ID)
			handlers.RespondNotFound(w, msgRequesterNotFound)

		case errors.Is(err, createBooking.ErrPermissionDenied):
			h.logger.Warn("POST /bookings - Permission denied: requester=%s, role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: requester=%s, room=%s, error=%v",
				actor.ID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, requester=%s, room=%s, status=%s",
		result.ID, actor.ID, req.RoomID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
