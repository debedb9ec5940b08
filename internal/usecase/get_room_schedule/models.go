package get_room_schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

// Request asks for one room's schedule on one calendar date.
type Request struct {
	RoomID uuid.UUID
	Date   time.Time
}

// OccupiedSlot is a reserved interval on the day's timeline.
type OccupiedSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Course    string
	Status    string
}

// FreeSlot is an unreserved gap within campus opening hours.
type FreeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response is the day timeline of a room: what is taken and what remains.
type Response struct {
	RoomID   uuid.UUID
	RoomName string
	Date     time.Time
	Occupied []OccupiedSlot
	Free     []FreeSlot
}
