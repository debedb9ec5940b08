package create_room

import (
	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms/models"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"` // "classroom" | "laboratory" | "auditorium"
	Capacity  int      `json:"capacity"`
	Building  string   `json:"building"`
	Floor     *int     `json:"floor,omitempty"`
	Equipment []string `json:"equipment,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CreateRoomRequest) ToServiceRequest(actorRole domain.Role) *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		ActorRole: actorRole,
		Name:      r.Name,
		Type:      r.Type,
		Capacity:  r.Capacity,
		Building:  r.Building,
		Floor:     r.Floor,
		Equipment: r.Equipment,
	}
}
