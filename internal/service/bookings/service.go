package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	bookingRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/booking"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/bookings/models"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/ptr"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

// Service governs the booking lifecycle after creation: approval,
// rejection, deletion and the read projections. Creation itself lives in
// the create_booking use case because it needs a serializable transaction.
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service.
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID returns one booking with its room and professor summaries.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return s.project(ctx, booking)
}

// List returns bookings matching the filter, each with its read-time joins,
// ordered by date and start time.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: date=%v, status=%v, professor=%v", req.Date, req.Status, req.ProfessorID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp, err := s.projectList(ctx, bookings)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: returning %d booking(s)", len(resp.Bookings))
	return resp, nil
}

// UpdateStatus moves a PENDING booking to APPROVED or REJECTED.
// Only administrators may perform it; both targets are terminal, so a
// booking that already left PENDING admits no further transition.
// Approval does not re-run conflict detection: a booking approved
// between this one's creation and its approval is not re-checked
// against it.
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking=%s, target=%s, actor=%s role=%s",
		bookingID, req.Status, req.ActorID, req.ActorRole)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil || newStatus == domain.StatusPending {
		s.logger.Warn("UpdateStatus: invalid target status=%q for booking=%s", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	if !domain.CanApprove(req.ActorRole) {
		s.logger.Warn("UpdateStatus: actor=%s role=%s may not approve/reject", req.ActorID, req.ActorRole)
		return nil, ErrPermissionDenied
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.Status != domain.StatusPending {
		s.logger.Warn("UpdateStatus: booking id=%s already %s", bookingID, booking.Status)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	s.logger.Info("UpdateStatus: booking id=%s is now %s", bookingID, newStatus)
	return s.project(ctx, booking)
}

// Delete removes a booking in any status. Administrators may delete
// unconditionally; a professor only their own.
func (s *Service) Delete(ctx context.Context, bookingID uuid.UUID, req *models.DeleteBookingRequest) error {
	s.logger.Info("Delete: booking=%s, actor=%s role=%s", bookingID, req.ActorID, req.ActorRole)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !domain.CanDeleteBooking(req.ActorRole, booking.IsOwnedBy(req.ActorID)) {
		s.logger.Warn("Delete: actor=%s role=%s may not delete booking id=%s", req.ActorID, req.ActorRole, bookingID)
		return ErrPermissionDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted by actor=%s", bookingID, req.ActorID)
	return nil
}

// Dashboard projects "what is happening now": today's approved bookings
// split into in-progress and upcoming around the current wall clock, plus
// the number of requests still awaiting review.
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	nowClock := types.NewTimeString(now)

	s.logger.Info("Dashboard: date=%s, now=%s", today.Format(domain.DateFormat), nowClock)

	approved, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		Date:   ptr.Ptr(today),
		Status: ptr.Ptr(domain.StatusApproved),
	})
	if err != nil {
		s.logger.Error("Dashboard: repository error listing approved: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	pending, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		Status: ptr.Ptr(domain.StatusPending),
	})
	if err != nil {
		s.logger.Error("Dashboard: repository error listing pending: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	inProgress := make([]*domain.Booking, 0)
	upcoming := make([]*domain.Booking, 0)
	for _, b := range approved {
		switch {
		case !nowClock.IsBefore(b.StartTime) && nowClock.IsBefore(b.EndTime):
			inProgress = append(inProgress, b)
		case b.StartTime.IsAfter(nowClock):
			upcoming = append(upcoming, b)
		}
	}

	inProgressResp, err := s.projectList(ctx, inProgress)
	if err != nil {
		return nil, err
	}
	upcomingResp, err := s.projectList(ctx, upcoming)
	if err != nil {
		return nil, err
	}

	return &models.DashboardResponse{
		Date:         today.Format(domain.DateFormat),
		Now:          nowClock.String(),
		InProgress:   inProgressResp.Bookings,
		Upcoming:     upcomingResp.Bookings,
		PendingCount: len(pending),
	}, nil
}

// project joins the room and professor summaries onto one booking.
func (s *Service) project(ctx context.Context, b *domain.Booking) (*models.BookingResponse, error) {
	resp, err := s.projectList(ctx, []*domain.Booking{b})
	if err != nil {
		return nil, err
	}
	return &resp.Bookings[0], nil
}

// projectList joins room and professor summaries onto a booking set with
// one batched lookup per entity. The booking rows themselves carry only
// foreign identifiers.
func (s *Service) projectList(ctx context.Context, bookings []*domain.Booking) (*models.BookingListResponse, error) {
	roomIDs := make([]uuid.UUID, 0, len(bookings))
	professorIDs := make([]uuid.UUID, 0, len(bookings))
	seenRooms := make(map[uuid.UUID]bool, len(bookings))
	seenProfessors := make(map[uuid.UUID]bool, len(bookings))

	for _, b := range bookings {
		if !seenRooms[b.RoomID] {
			seenRooms[b.RoomID] = true
			roomIDs = append(roomIDs, b.RoomID)
		}
		if !seenProfessors[b.ProfessorID] {
			seenProfessors[b.ProfessorID] = true
			professorIDs = append(professorIDs, b.ProfessorID)
		}
	}

	rooms, err := s.roomRepo.GetByIDs(ctx, roomIDs)
	if err != nil {
		s.logger.Error("projectList: failed to resolve rooms: %v", err)
		return nil, fmt.Errorf("%w: projectList - resolve rooms: %v", ErrInternal, err)
	}
	professors, err := s.userRepo.GetByIDs(ctx, professorIDs)
	if err != nil {
		s.logger.Error("projectList: failed to resolve professors: %v", err)
		return nil, fmt.Errorf("%w: projectList - resolve professors: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, len(bookings)),
	}
	for i, b := range bookings {
		resp.Bookings[i] = *models.FromDomainBooking(b, rooms[b.RoomID], professors[b.ProfessorID])
	}
	return resp, nil
}
