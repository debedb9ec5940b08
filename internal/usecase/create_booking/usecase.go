package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	roomRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/room"
	userRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/user"
)

// UseCase creates reservation requests. A request flows through business
// validation, then conflict detection, and only then is persisted; the
// conflict check and the insert run inside one serializable transaction so
// two concurrent requests for the same room, date and overlapping interval
// cannot both pass the check.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the reservation request pipeline.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: requester=%s, room=%s, date=%s, interval=%s-%s",
		req.RequesterID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Resolve the requester and its role from storage.
	requester, err := uc.userRepo.GetByID(ctx, req.RequesterID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: requester id=%s not found", req.RequesterID)
			return nil, ErrRequesterNotFound
		}
		uc.logger.Error("CreateBooking: failed to get requester id=%s: %v", req.RequesterID, err)
		return nil, fmt.Errorf("%w: failed to get requester: %v", ErrInternal, err)
	}

	// 2. Only professors and administrators may book rooms.
	if !domain.CanCreateBooking(requester.Role) {
		uc.logger.Warn("CreateBooking: role=%s of user=%s may not create bookings", requester.Role, requester.ID)
		return nil, ErrPermissionDenied
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking
	var room *domain.Room

	// 3. Check-then-insert must be logically atomic for the no-overlap
	// invariant to hold, so both run inside one serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error

		// 3.1. The referenced room must exist.
		room, err = uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Business validation: every rule evaluated, full list reported.
		if violations := validate(req, room, now); len(violations) > 0 {
			uc.logger.Warn("CreateBooking: %d rule violation(s) for requester=%s", len(violations), req.RequesterID)
			return &ValidationError{Violations: violations}
		}

		// 3.3. Conflict detection against the active bookings of the
		// same room and date, rows locked until the transaction ends.
		conflicts, err := uc.bookingRepo.FindConflicts(txCtx, req.RoomID, req.Date, req.StartTime, req.EndTime, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find conflicts: %v", err)
			return fmt.Errorf("%w: failed to find conflicts: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: %d conflicting booking(s) for room=%s on %s",
				len(conflicts), req.RoomID, req.Date.Format(domain.DateFormat))
			return &ConflictError{Conflicts: summarize(conflicts)}
		}

		// 3.4. Administrators self-approve; everyone else starts pending.
		status := domain.StatusPending
		if requester.Role == domain.RoleAdmin {
			status = domain.StatusApproved
		}

		booking := &domain.Booking{
			RoomID:      req.RoomID,
			ProfessorID: requester.ID,
			Course:      req.Course,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Students:    req.Students,
			Notes:       req.Notes,
			Status:      status,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%s status=%s", result.ID, result.Status)

	return &Response{
		ID:        result.ID,
		Course:    result.Course,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Students:  result.Students,
		Notes:     result.Notes,
		Status:    string(result.Status),
		Room: RoomSummary{
			ID:       room.ID,
			Name:     room.Name,
			Type:     string(room.Type),
			Capacity: room.Capacity,
			Building: room.Building,
		},
		Professor: ProfessorSummary{
			ID:    requester.ID,
			Name:  requester.Name,
			Email: requester.Email,
		},
		CreatedAt: result.CreatedAt,
	}, nil
}

// summarize reduces conflicting bookings to the fields callers may see.
func summarize(conflicts []*domain.Booking) []ConflictSummary {
	out := make([]ConflictSummary, len(conflicts))
	for i, c := range conflicts {
		out[i] = ConflictSummary{
			Course:    c.Course,
			StartTime: c.StartTime.String(),
			EndTime:   c.EndTime.String(),
		}
	}
	return out
}
