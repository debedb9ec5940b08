package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	userRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/user"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users/models"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/ptr"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email || existing.CPF == u.CPF {
			return nil, userRepo.ErrDuplicateUser
		}
	}
	out := *u
	out.ID = uuid.New()
	f.users[out.ID] = &out
	return &out, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context, filter domain.UsersFilter) ([]*domain.User, error) {
	out := make([]*domain.User, 0)
	for _, u := range f.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id uuid.UUID, upd domain.UserUpdate) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Department != nil {
		u.Department = upd.Department
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func createRequest() *models.CreateUserRequest {
	return &models.CreateUserRequest{
		ActorRole: domain.RoleAdmin,
		Email:     "Carlos.Souza@fmpsc.edu.br",
		CPF:       "123.456.789-00",
		Name:      "Carlos Souza",
	}
}

func TestCreate_DerivesProfessorRoleAndNormalizes(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "carlos.souza@fmpsc.edu.br", resp.Email)
	assert.Equal(t, "PROFESSOR", resp.Role)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "12345678900", stored.CPF)
}

func TestCreate_DerivesStudentRole(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	req := createRequest()
	req.Email = "joao.silva@aluno.fmpsc.edu.br"

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "STUDENT", resp.Role)
}

func TestCreate_ExplicitRoleWins(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	req := createRequest()
	req.Role = "ADMIN"

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", resp.Role)
}

func TestCreate_NonInstitutionalEmailRejected(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	req := createRequest()
	req.Email = "carlos@gmail.com"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_InvalidCPF(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	req := createRequest()
	req.CPF = "1234"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_NonAdminDenied(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	req := createRequest()
	req.ActorRole = domain.RoleProfessor

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.CPF = "987.654.321-00"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestList_AdminOnlyWithRoleFilter(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	student := createRequest()
	student.Email = "joao.silva@aluno.fmpsc.edu.br"
	student.CPF = "987.654.321-00"
	_, err = svc.Create(context.Background(), student)
	require.NoError(t, err)

	_, err = svc.List(context.Background(), &models.ListUsersRequest{ActorRole: domain.RoleProfessor})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	resp, err := svc.List(context.Background(), &models.ListUsersRequest{ActorRole: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, resp.Users, 2)

	resp, err = svc.List(context.Background(), &models.ListUsersRequest{
		ActorRole: domain.RoleAdmin,
		Role:      ptr.Ptr("STUDENT"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "STUDENT", resp.Users[0].Role)

	_, err = svc.List(context.Background(), &models.ListUsersRequest{
		ActorRole: domain.RoleAdmin,
		Role:      ptr.Ptr("JANITOR"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_SelfService(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateUserRequest{
		ActorID:    created.ID,
		ActorRole:  domain.RoleProfessor,
		Name:       ptr.Ptr("Carlos A. Souza"),
		Department: ptr.Ptr("Medicina"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Carlos A. Souza", resp.Name)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Medicina", *resp.Department)
}

func TestUpdate_OtherUserRequiresAdmin(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateUserRequest{
		ActorID:   uuid.New(),
		ActorRole: domain.RoleProfessor,
		Name:      ptr.Ptr("Mallory"),
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateUserRequest{
		ActorID:   uuid.New(),
		ActorRole: domain.RoleAdmin,
		Name:      ptr.Ptr("Carlos Souza Jr."),
	})
	require.NoError(t, err)
	assert.Equal(t, "Carlos Souza Jr.", resp.Name)
}

func TestUpdate_EmptyNameRejected(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateUserRequest{
		ActorID:   created.ID,
		ActorRole: domain.RoleProfessor,
		Name:      ptr.Ptr(""),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
