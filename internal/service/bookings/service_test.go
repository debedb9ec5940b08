package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	bookingRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/booking"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/bookings/models"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*domain.Booking
	deleted  []uuid.UUID
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Date != nil && !b.Date.Equal(*filter.Date) {
			continue
		}
		if filter.ProfessorID != nil && b.ProfessorID != *filter.ProfessorID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*domain.Room
}

func (f *fakeRoomRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Room, error) {
	out := make(map[uuid.UUID]*domain.Room, len(ids))
	for _, id := range ids {
		if r, ok := f.rooms[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func (f *fakeUserRepo) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	out := make(map[uuid.UUID]*domain.User, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

type fixture struct {
	svc   *Service
	repo  *fakeBookingRepo
	room  *domain.Room
	prof  *domain.User
	admin *domain.User
	now   time.Time
	today time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	now := time.Date(2026, 6, 10, 10, 30, 0, 0, time.UTC)
	today := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	room := &domain.Room{
		ID:       uuid.New(),
		Name:     "Lab 101",
		Type:     domain.RoomTypeLaboratory,
		Capacity: 40,
		Building: "Bloco A",
		Active:   true,
	}
	prof := &domain.User{
		ID:    uuid.New(),
		Email: "carlos.souza@fmpsc.edu.br",
		Name:  "Carlos Souza",
		Role:  domain.RoleProfessor,
	}
	admin := &domain.User{
		ID:    uuid.New(),
		Email: "admin@fmpsc.edu.br",
		Name:  "Admin",
		Role:  domain.RoleAdmin,
	}

	repo := &fakeBookingRepo{bookings: make(map[uuid.UUID]*domain.Booking)}
	svc := NewService(
		repo,
		&fakeRoomRepo{rooms: map[uuid.UUID]*domain.Room{room.ID: room}},
		&fakeUserRepo{users: map[uuid.UUID]*domain.User{prof.ID: prof, admin.ID: admin}},
		nopLogger{},
	)
	svc.timeProvider = fixedTimeProvider{now: now}

	return &fixture{svc: svc, repo: repo, room: room, prof: prof, admin: admin, now: now, today: today}
}

func (f *fixture) addBooking(t *testing.T, date time.Time, start, end string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		ID:          uuid.New(),
		RoomID:      f.room.ID,
		ProfessorID: f.prof.ID,
		Course:      "Anatomia I",
		Date:        date,
		StartTime:   mustTime(t, start),
		EndTime:     mustTime(t, end),
		Students:    30,
		Status:      status,
	}
	f.repo.bookings[b.ID] = b
	return b
}

func TestGetByID_ProjectsRoomAndProfessor(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, f.today, "10:00", "12:00", domain.StatusPending)

	resp, err := f.svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)

	require.NotNil(t, resp.Room)
	assert.Equal(t, "Lab 101", resp.Room.Name)
	require.NotNil(t, resp.Professor)
	assert.Equal(t, "Carlos Souza", resp.Professor.Name)
	assert.Equal(t, "2026-06-10", resp.Date)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_Approve(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, f.today, "10:00", "12:00", domain.StatusPending)

	resp, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{
		ActorID:   f.admin.ID,
		ActorRole: f.admin.Role,
		Status:    "APPROVED",
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)
}

func TestUpdateStatus_NonAdminDenied(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, f.today, "10:00", "12:00", domain.StatusPending)

	_, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{
		ActorID:   f.prof.ID,
		ActorRole: f.prof.Role,
		Status:    "APPROVED",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, domain.StatusPending, b.Status)
}

func TestUpdateStatus_TerminalStateRejected(t *testing.T) {
	f := newFixture(t)

	for _, status := range []domain.BookingStatus{domain.StatusApproved, domain.StatusRejected} {
		b := f.addBooking(t, f.today, "10:00", "12:00", status)

		_, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{
			ActorID:   f.admin.ID,
			ActorRole: f.admin.Role,
			Status:    "REJECTED",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestUpdateStatus_PendingTargetRejected(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, f.today, "10:00", "12:00", domain.StatusApproved)

	_, err := f.svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{
		ActorID:   f.admin.ID,
		ActorRole: f.admin.Role,
		Status:    "PENDING",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDelete_OwnerProfessor(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, f.today, "10:00", "12:00", domain.StatusPending)

	err := f.svc.Delete(context.Background(), b.ID, &models.DeleteBookingRequest{
		ActorID:   f.prof.ID,
		ActorRole: f.prof.Role,
	})
	require.NoError(t, err)
	assert.Contains(t, f.repo.deleted, b.ID)
}

func TestDelete_OtherProfessorDenied(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, f.today, "10:00", "12:00", domain.StatusPending)

	err := f.svc.Delete(context.Background(), b.ID, &models.DeleteBookingRequest{
		ActorID:   uuid.New(),
		ActorRole: domain.RoleProfessor,
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestDelete_AdminDeletesAnyStatus(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, f.today, "10:00", "12:00", domain.StatusApproved)

	err := f.svc.Delete(context.Background(), b.ID, &models.DeleteBookingRequest{
		ActorID:   f.admin.ID,
		ActorRole: f.admin.Role,
	})
	require.NoError(t, err)
}

func TestList_FiltersByStatus(t *testing.T) {
	f := newFixture(t)
	f.addBooking(t, f.today, "08:00", "09:00", domain.StatusPending)
	f.addBooking(t, f.today, "10:00", "12:00", domain.StatusApproved)

	status := "PENDING"
	resp, err := f.svc.List(context.Background(), &models.ListBookingsRequest{Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "PENDING", resp.Bookings[0].Status)
}

func TestList_InvalidStatus(t *testing.T) {
	f := newFixture(t)
	status := "CANCELLED"
	_, err := f.svc.List(context.Background(), &models.ListBookingsRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

// The dashboard splits today's approved bookings around the wall clock:
// fixture time is 10:30, so 10:00-12:00 is in progress, 14:00-16:00 is
// upcoming, and a booking that ended at 09:00 appears in neither.
func TestDashboard_SplitsAroundNow(t *testing.T) {
	f := newFixture(t)
	f.addBooking(t, f.today, "08:00", "09:00", domain.StatusApproved) // finished
	inProgress := f.addBooking(t, f.today, "10:00", "12:00", domain.StatusApproved)
	upcoming := f.addBooking(t, f.today, "14:00", "16:00", domain.StatusApproved)
	f.addBooking(t, f.today, "10:00", "12:00", domain.StatusPending) // not shown
	f.addBooking(t, f.today.AddDate(0, 0, 1), "10:00", "12:00", domain.StatusPending)

	resp, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-06-10", resp.Date)
	assert.Equal(t, "10:30", resp.Now)
	require.Len(t, resp.InProgress, 1)
	assert.Equal(t, inProgress.ID, resp.InProgress[0].ID)
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, upcoming.ID, resp.Upcoming[0].ID)
	assert.Equal(t, 2, resp.PendingCount)
}

func TestDashboard_BoundaryTimes(t *testing.T) {
	f := newFixture(t)
	// starts exactly now: in progress; ends exactly now: finished
	starting := f.addBooking(t, f.today, "10:30", "12:00", domain.StatusApproved)
	f.addBooking(t, f.today, "09:00", "10:30", domain.StatusApproved)

	resp, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.InProgress, 1)
	assert.Equal(t, starting.ID, resp.InProgress[0].ID)
	assert.Empty(t, resp.Upcoming)
}
