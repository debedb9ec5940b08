package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
)

// BookingRepository is the bookings repository contract.
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomRepository resolves room summaries for read projections.
type RoomRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Room, error)
}

// UserRepository resolves professor summaries for read projections.
type UserRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error)
}

// TimeProvider supplies the current moment; swapped in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
