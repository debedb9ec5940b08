package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	roomRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/room"
	userRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/user"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

type fakeBookingRepo struct {
	conflicts []*domain.Booking
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.ID = uuid.New()
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeBookingRepo) FindConflicts(_ context.Context, _ uuid.UUID, _ time.Time, start, end types.TimeString, _ *uuid.UUID) ([]*domain.Booking, error) {
	matched := make([]*domain.Booking, 0)
	for _, b := range f.conflicts {
		if b.Overlaps(start, end) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	room     *domain.Room
	prof     *domain.User
	admin    *domain.User
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	now := time.Date(2026, 6, 10, 14, 0, 0, 0, time.UTC)
	room := activeRoom(40)
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
	student := &domain.User{
		ID:    uuid.New(),
		Email: "joao.silva@aluno.fmpsc.edu.br",
		Name:  "João Silva",
		Role:  domain.RoleStudent,
	}

	bookings := &fakeBookingRepo{}
	uc := NewUseCase(
		bookings,
		&fakeRoomRepo{rooms: map[uuid.UUID]*domain.Room{room.ID: room}},
		&fakeUserRepo{users: map[uuid.UUID]*domain.User{
			prof.ID:    prof,
			admin.ID:   admin,
			student.ID: student,
		}},
		passthroughTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: now}

	return &fixture{uc: uc, bookings: bookings, room: room, prof: prof, admin: admin, now: now}
}

func (f *fixture) request(t *testing.T) *Request {
	t.Helper()
	req := validRequest(t, f.now)
	req.RequesterID = f.prof.ID
	req.RoomID = f.room.ID
	return req
}

func (f *fixture) existingBooking(t *testing.T, start, end string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:        uuid.New(),
		RoomID:    f.room.ID,
		Course:    "Fisiologia",
		StartTime: ts(t, start),
		EndTime:   ts(t, end),
		Status:    domain.StatusApproved,
	}
}

func TestExecute_ProfessorCreatesPendingBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request(t))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, f.room.ID, resp.Room.ID)
	assert.Equal(t, f.prof.ID, resp.Professor.ID)
	assert.Equal(t, "10:00", resp.StartTime.String())
	require.NotNil(t, f.bookings.created)
	assert.Equal(t, f.prof.ID, f.bookings.created.ProfessorID)
}

func TestExecute_AdminSelfApproves(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	req.RequesterID = f.admin.ID

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusApproved), resp.Status)
}

func TestExecute_StudentDenied(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	for id, u := range f.uc.userRepo.(*fakeUserRepo).users {
		if u.Role == domain.RoleStudent {
			req.RequesterID = id
		}
	}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_UnknownRequester(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	req.RequesterID = uuid.New()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRequesterNotFound)
}

func TestExecute_UnknownRoom(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	req.RoomID = uuid.New()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_OverlapRejected(t *testing.T) {
	f := newFixture(t)
	f.bookings.conflicts = []*domain.Booking{f.existingBooking(t, "10:00", "12:00")}

	req := f.request(t)
	req.StartTime = ts(t, "11:00")
	req.EndTime = ts(t, "13:00")

	_, err := f.uc.Execute(context.Background(), req)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "Fisiologia", conflictErr.Conflicts[0].Course)
	assert.Equal(t, "10:00", conflictErr.Conflicts[0].StartTime)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_BackToBackAccepted(t *testing.T) {
	f := newFixture(t)
	f.bookings.conflicts = []*domain.Booking{f.existingBooking(t, "10:00", "12:00")}

	req := f.request(t)
	req.StartTime = ts(t, "12:00")
	req.EndTime = ts(t, "13:00")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_ContainedIntervalRejected(t *testing.T) {
	f := newFixture(t)
	f.bookings.conflicts = []*domain.Booking{f.existingBooking(t, "08:00", "18:00")}

	req := f.request(t)
	req.StartTime = ts(t, "10:00")
	req.EndTime = ts(t, "11:00")

	var conflictErr *ConflictError
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorAs(t, err, &conflictErr)
}

func TestExecute_ValidationErrorsReported(t *testing.T) {
	f := newFixture(t)
	req := f.request(t)
	// violates lead time, duration and capacity at once
	req.Date = f.now
	req.EndTime = ts(t, "10:30")
	req.Students = f.room.Capacity + 1

	_, err := f.uc.Execute(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 3)
	assert.Nil(t, f.bookings.created)
}
