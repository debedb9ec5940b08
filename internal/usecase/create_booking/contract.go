package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

// BookingRepository is the bookings repository contract.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindConflicts(ctx context.Context, roomID uuid.UUID, date time.Time, start, end types.TimeString, excludeID *uuid.UUID) ([]*domain.Booking, error)
}

// RoomRepository is the rooms repository contract.
type RoomRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

// UserRepository is the users repository contract.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// TransactionManager serializes the conflict check against the insert.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
