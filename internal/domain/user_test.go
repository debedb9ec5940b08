package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRolePermissions(t *testing.T) {
	assert.True(t, CanCreateBooking(RoleProfessor))
	assert.True(t, CanCreateBooking(RoleAdmin))
	assert.False(t, CanCreateBooking(RoleStudent))

	assert.True(t, CanApprove(RoleAdmin))
	assert.False(t, CanApprove(RoleProfessor))
	assert.False(t, CanApprove(RoleStudent))

	assert.True(t, CanDeleteBooking(RoleAdmin, false))
	assert.True(t, CanDeleteBooking(RoleProfessor, true))
	assert.False(t, CanDeleteBooking(RoleProfessor, false))
	assert.False(t, CanDeleteBooking(RoleStudent, true))
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678900", NormalizeCPF("123.456.789-00"))
	assert.Equal(t, "12345678900", NormalizeCPF("123 456 789 00"))
	assert.Equal(t, "12345678900", NormalizeCPF("12345678900"))
}

func TestInstitutionalEmailRole(t *testing.T) {
	role, ok := InstitutionalEmailRole("joao.silva@aluno.fmpsc.edu.br")
	assert.True(t, ok)
	assert.Equal(t, RoleStudent, role)

	role, ok = InstitutionalEmailRole("Carlos.Souza@FMPSC.edu.br")
	assert.True(t, ok)
	assert.Equal(t, RoleProfessor, role)

	_, ok = InstitutionalEmailRole("someone@gmail.com")
	assert.False(t, ok)
}

func TestBookingOwnership(t *testing.T) {
	owner := uuid.New()
	b := &Booking{ProfessorID: owner}

	assert.True(t, b.IsOwnedBy(owner))
	assert.False(t, b.IsOwnedBy(uuid.New()))
}
