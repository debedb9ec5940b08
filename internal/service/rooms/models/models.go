package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
)

// Request models

// CreateRoomRequest registers a new bookable space.
type CreateRoomRequest struct {
	ActorRole domain.Role
	Name      string
	Type      string
	Capacity  int
	Building  string
	Floor     *int
	Equipment []string
}

// UpdateRoomRequest edits a room. Nil fields keep their current value;
// Active may be set to false to deactivate the room for future bookings.
type UpdateRoomRequest struct {
	ActorRole domain.Role
	Name      *string
	Type      *string
	Capacity  *int
	Building  *string
	Floor     *int
	Equipment *[]string
	Active    *bool
}

// ListRoomsRequest lists rooms; IncludeInactive is honored for admins only.
type ListRoomsRequest struct {
	ActorRole       domain.Role
	IncludeInactive bool
}

// Response models

// RoomResponse is one room.
type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Capacity  int       `json:"capacity"`
	Building  string    `json:"building"`
	Floor     *int      `json:"floor,omitempty"`
	Equipment []string  `json:"equipment"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse is an ordered room listing.
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom converts a domain room into a response DTO.
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	equipment := r.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Type:      string(r.Type),
		Capacity:  r.Capacity,
		Building:  r.Building,
		Floor:     r.Floor,
		Equipment: equipment,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList converts a room slice into a listing DTO.
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, len(rooms))}
	for i, r := range rooms {
		resp.Rooms[i] = *FromDomainRoom(r)
	}
	return resp
}
