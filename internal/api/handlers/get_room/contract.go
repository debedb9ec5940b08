package get_room

import (
	"context"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms/models"
)

type RoomService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
