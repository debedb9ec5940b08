package update_room

import (
	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	"github.com/VitorMachadoSilva/ReservationSystem/internal/service/rooms/models"
)

// UpdateRoomRequest HTTP request model. Omitted fields stay unchanged;
// active=false deactivates the room for future bookings.
type UpdateRoomRequest struct {
	Name      *string   `json:"name,omitempty"`
	Type      *string   `json:"type,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	Building  *string   `json:"building,omitempty"`
	Floor     *int      `json:"floor,omitempty"`
	Equipment *[]string `json:"equipment,omitempty"`
	Active    *bool     `json:"active,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *UpdateRoomRequest) ToServiceRequest(actorRole domain.Role) *models.UpdateRoomRequest {
	return &models.UpdateRoomRequest{
		ActorRole: actorRole,
		Name:      r.Name,
		Type:      r.Type,
		Capacity:  r.Capacity,
		Building:  r.Building,
		Floor:     r.Floor,
		Equipment: r.Equipment,
		Active:    r.Active,
	}
}
