package rooms

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	roomRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/room"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms/models"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/ptr"
)

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*domain.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*domain.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	for _, r := range f.rooms {
		if r.Name == room.Name {
			return nil, roomRepo.ErrDuplicateName
		}
	}
	out := *room
	out.ID = uuid.New()
	f.rooms[out.ID] = &out
	return &out, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return r, nil
}

func (f *fakeRoomRepo) List(_ context.Context, activeOnly bool) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0)
	for _, r := range f.rooms {
		if activeOnly && !r.Active {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, id uuid.UUID, upd domain.RoomUpdate) error {
	r, ok := f.rooms[id]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	if upd.Name != nil {
		r.Name = *upd.Name
	}
	if upd.Capacity != nil {
		r.Capacity = *upd.Capacity
	}
	if upd.Active != nil {
		r.Active = *upd.Active
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func createRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		ActorRole: domain.RoleAdmin,
		Name:      "Lab 101",
		Type:      "laboratory",
		Capacity:  40,
		Building:  "Bloco A",
		Equipment: []string{"projetor", "computadores"},
	}
}

func TestCreate_AdminCreatesActiveRoom(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.True(t, resp.Active)
	assert.Equal(t, "Lab 101", resp.Name)
	assert.Equal(t, "laboratory", resp.Type)
}

func TestCreate_NonAdminDenied(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), nopLogger{})

	for _, role := range []domain.Role{domain.RoleProfessor, domain.RoleStudent} {
		req := createRequest()
		req.ActorRole = role

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.CreateRoomRequest)
	}{
		{"empty name", func(r *models.CreateRoomRequest) { r.Name = "" }},
		{"empty building", func(r *models.CreateRoomRequest) { r.Building = "" }},
		{"unknown type", func(r *models.CreateRoomRequest) { r.Type = "gym" }},
		{"zero capacity", func(r *models.CreateRoomRequest) { r.Capacity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestList_InactiveVisibleToAdminOnly(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	inactive := *createRequest()
	inactive.Name = "Sala 202"
	created, err := svc.Create(context.Background(), &inactive)
	require.NoError(t, err)
	require.NoError(t, repo.Update(context.Background(), created.ID, domain.RoomUpdate{Active: ptr.Ptr(false)}))

	resp, err := svc.List(context.Background(), &models.ListRoomsRequest{ActorRole: domain.RoleProfessor, IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 1)

	resp, err = svc.List(context.Background(), &models.ListRoomsRequest{ActorRole: domain.RoleAdmin, IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 2)

	resp, err = svc.List(context.Background(), &models.ListRoomsRequest{ActorRole: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 1)
}

func TestUpdate_Deactivate(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), nopLogger{})
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{
		ActorRole: domain.RoleAdmin,
		Active:    ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestUpdate_NonAdminDenied(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), nopLogger{})
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{
		ActorRole: domain.RoleProfessor,
		Active:    ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUpdate_UnknownRoom(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), uuid.New(), &models.UpdateRoomRequest{
		ActorRole: domain.RoleAdmin,
		Capacity:  ptr.Ptr(50),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdate_InvalidValues(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), nopLogger{})
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{
		ActorRole: domain.RoleAdmin,
		Capacity:  ptr.Ptr(0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{
		ActorRole: domain.RoleAdmin,
		Type:      ptr.Ptr("gym"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
