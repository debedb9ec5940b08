package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

// Request is the reservation request handed to the use case. The actor is
// always explicit (RequesterID); the use case resolves its role from
// storage rather than trusting ambient session state.
type Request struct {
	RequesterID uuid.UUID
	RoomID      uuid.UUID
	Course      string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Students    int
	Notes       *string
}

// RoomSummary is the denormalized room projection returned for display.
type RoomSummary struct {
	ID       uuid.UUID
	Name     string
	Type     string
	Capacity int
	Building string
}

// ProfessorSummary is the denormalized creator projection returned for display.
type ProfessorSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Response is the created booking plus its read-time joins.
type Response struct {
	ID        uuid.UUID
	Course    string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Students  int
	Notes     *string
	Status    string

	Room      RoomSummary
	Professor ProfessorSummary

	CreatedAt time.Time
}
