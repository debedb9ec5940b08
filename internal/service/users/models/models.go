package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
)

// Request models

// CreateUserRequest registers an institutional account. Role is optional:
// when empty it is derived from the e-mail domain, an explicit value lets
// an administrator grant ADMIN.
type CreateUserRequest struct {
	ActorRole  domain.Role
	Email      string
	CPF        string
	Name       string
	Role       string
	Department *string
}

// UpdateUserRequest edits the self-service fields of an account.
// Nil fields keep their current value.
type UpdateUserRequest struct {
	ActorID    uuid.UUID
	ActorRole  domain.Role
	Name       *string
	Department *string
}

// ListUsersRequest lists accounts, optionally filtered by role.
type ListUsersRequest struct {
	ActorRole domain.Role
	Role      *string
}

// Response models

// UserResponse is one account. The CPF is never echoed back.
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Department *string   `json:"department,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserListResponse is an account listing.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FromDomainUser converts a domain user into a response DTO.
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// FromDomainUserList converts a user slice into a listing DTO.
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{Users: make([]UserResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = *FromDomainUser(u)
	}
	return resp
}
