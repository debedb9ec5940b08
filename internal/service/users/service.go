package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	userRepo "github.com/VitorMachadoSilva/ReservationSystem/internal/infra/storage/user"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users/models"
)

// Service manages institutional accounts. Account creation and listing
// are restricted to administrators; profile edits are self-service.
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService creates the users service.
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create registers an institutional account. Administrators only.
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: email=%s", req.Email)

	if !domain.CanManageUsers(req.ActorRole) {
		s.logger.Warn("Create: role=%s may not manage users", req.ActorRole)
		return nil, ErrPermissionDenied
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	cpf := domain.NormalizeCPF(req.CPF)

	role, err := resolveRole(email, req.Role)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(cpf) != 11 {
		return nil, fmt.Errorf("%w: cpf must have 11 digits", ErrInvalidInput)
	}

	user := &domain.User{
		Email:      email,
		CPF:        cpf,
		Name:       req.Name,
		Role:       role,
		Department: req.Department,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			s.logger.Warn("Create: email or cpf already registered for %s", email)
			return nil, ErrDuplicateUser
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: user id=%s role=%s created", created.ID, created.Role)
	return models.FromDomainUser(created), nil
}

// GetByID returns one account.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// List returns accounts, optionally filtered by role. Administrators only.
func (s *Service) List(ctx context.Context, req *models.ListUsersRequest) (*models.UserListResponse, error) {
	if !domain.CanManageUsers(req.ActorRole) {
		s.logger.Warn("List: role=%s may not manage users", req.ActorRole)
		return nil, ErrPermissionDenied
	}

	var filter domain.UsersFilter
	if req.Role != nil {
		role := domain.Role(strings.ToUpper(*req.Role))
		if !domain.ValidRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *req.Role)
		}
		filter.Role = &role
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: returning %d user(s)", len(users))
	return models.FromDomainUserList(users), nil
}

// Update edits an account's name and department. Users edit themselves;
// administrators may edit anyone.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: user=%s actor=%s", id, req.ActorID)

	if req.ActorID != id && !domain.CanManageUsers(req.ActorRole) {
		s.logger.Warn("Update: actor=%s may not edit user=%s", req.ActorID, id)
		return nil, ErrPermissionDenied
	}
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}

	upd := domain.UserUpdate{
		Name:       req.Name,
		Department: req.Department,
	}
	if err := s.userRepo.Update(ctx, id, upd); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload user: %v", ErrInternal, err)
	}

	s.logger.Info("Update: user id=%s updated", id)
	return models.FromDomainUser(user), nil
}

// resolveRole derives the account role. An explicit role wins as long as
// it is valid; otherwise the institutional e-mail domain decides.
func resolveRole(email, explicit string) (domain.Role, error) {
	if explicit != "" {
		role := domain.Role(strings.ToUpper(explicit))
		if !domain.ValidRole(role) {
			return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, explicit)
		}
		return role, nil
	}
	role, ok := domain.InstitutionalEmailRole(email)
	if !ok {
		return "", fmt.Errorf("%w: e-mail must belong to the institutional domain", ErrInvalidInput)
	}
	return role, nil
}
