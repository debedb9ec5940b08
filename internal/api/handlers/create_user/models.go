package create_user

import (
	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/users/models"
)

// CreateUserRequest HTTP request model. Role is optional: when omitted it
// is derived from the institutional e-mail domain.
type CreateUserRequest struct {
	Email      string  `json:"email"`
	CPF        string  `json:"cpf"`
	Name       string  `json:"name"`
	Role       string  `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CreateUserRequest) ToServiceRequest(actorRole domain.Role) *models.CreateUserRequest {
	return &models.CreateUserRequest{
		ActorRole:  actorRole,
		Email:      r.Email,
		CPF:        r.CPF,
		Name:       r.Name,
		Role:       r.Role,
		Department: r.Department,
	}
}
