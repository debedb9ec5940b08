package get_room_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	roomRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/room"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/ptr"
)

// UseCase projects one room's day schedule: occupied intervals and the free
// gaps between them within campus opening hours.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute builds the schedule for the requested room and date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomSchedule: room=%s, date=%s", req.RoomID, req.Date.Format(domain.DateFormat))

	if req.RoomID == uuid.Nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: room and date are required", ErrInvalidInput)
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomSchedule: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomSchedule: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Date:       ptr.Ptr(req.Date),
		RoomID:     ptr.Ptr(req.RoomID),
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetRoomSchedule: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("GetRoomSchedule: room=%s has %d active booking(s) on %s",
		req.RoomID, len(bookings), req.Date.Format(domain.DateFormat))

	return &Response{
		RoomID:   room.ID,
		RoomName: room.Name,
		Date:     req.Date,
		Occupied: occupiedSlots(bookings),
		Free:     freeSlots(bookings),
	}, nil
}
