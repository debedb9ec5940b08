package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role determines booking permissions. Deliberately a closed enumeration
// checked through the Can* helpers below, not through type inspection.
type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleProfessor Role = "PROFESSOR"
	RoleAdmin     Role = "ADMIN"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleStudent || r == RoleProfessor || r == RoleAdmin
}

// CanCreateBooking reports whether the role may submit reservation requests.
func CanCreateBooking(r Role) bool {
	return r == RoleProfessor || r == RoleAdmin
}

// CanApprove reports whether the role may approve or reject requests.
func CanApprove(r Role) bool {
	return r == RoleAdmin
}

// CanDeleteBooking reports whether the role may delete a booking,
// given whether the actor owns it.
func CanDeleteBooking(r Role, isOwner bool) bool {
	return r == RoleAdmin || (r == RoleProfessor && isOwner)
}

// CanManageRooms reports whether the role may create or edit rooms.
func CanManageRooms(r Role) bool {
	return r == RoleAdmin
}

// CanManageUsers reports whether the role may create or list users.
func CanManageUsers(r Role) bool {
	return r == RoleAdmin
}

// User is an institutional account. The CPF doubles as the credential,
// verified by the authentication layer outside this service.
type User struct {
	ID         uuid.UUID
	Email      string // institutional, stored lowercase
	CPF        string // stored normalized (digits only)
	Name       string
	Role       Role
	Department *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeCPF strips the separators accepted on input ("123.456.789-00").
func NormalizeCPF(cpf string) string {
	return strings.NewReplacer(".", "", "-", "", " ", "").Replace(cpf)
}

// InstitutionalEmailRole derives the role implied by an institutional
// e-mail address. Student addresses use the @aluno subdomain; every other
// address under the institution's domain belongs to a professor.
// Returns false when the address is not institutional at all.
func InstitutionalEmailRole(email string) (Role, bool) {
	lower := strings.ToLower(email)
	switch {
	case strings.HasSuffix(lower, "@"+StudentEmailDomain):
		return RoleStudent, true
	case strings.HasSuffix(lower, "@"+InstitutionEmailDomain):
		return RoleProfessor, true
	default:
		return "", false
	}
}

// UserUpdate carries the self-service editable fields.
// Nil fields keep their current value.
type UserUpdate struct {
	Name       *string
	Department *string
}

// UsersFilter filters user listings.
type UsersFilter struct {
	Role *Role
}
