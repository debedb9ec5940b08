package delete_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/bookings/models"
)

type BookingService interface {
	Delete(ctx context.Context, bookingID uuid.UUID, req *models.DeleteBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
