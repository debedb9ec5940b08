package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoomType classifies bookable spaces.
type RoomType string

const (
	RoomTypeClassroom  RoomType = "classroom"
	RoomTypeLaboratory RoomType = "laboratory"
	RoomTypeAuditorium RoomType = "auditorium"
)

// ValidRoomType reports whether t is one of the known room types.
func ValidRoomType(t RoomType) bool {
	return t == RoomTypeClassroom || t == RoomTypeLaboratory || t == RoomTypeAuditorium
}

// Room is a bookable space. Rooms are never deleted: deactivating one
// removes it from future bookability while existing bookings stand.
type Room struct {
	ID        uuid.UUID
	Name      string
	Type      RoomType
	Capacity  int
	Building  string
	Floor     *int
	Equipment []string
	Active    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fits reports whether the requested headcount fits the room.
// A headcount exactly equal to capacity is accepted.
func (r *Room) Fits(students int) bool {
	return students <= r.Capacity
}

// RoomUpdate carries the fields an administrator may change on a room.
// Nil fields keep their current value.
type RoomUpdate struct {
	Name      *string
	Type      *RoomType
	Capacity  *int
	Building  *string
	Floor     *int
	Equipment *[]string
	Active    *bool
}
