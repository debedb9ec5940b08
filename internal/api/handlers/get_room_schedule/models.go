package get_room_schedule

import (
	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	getRoomSchedule "github.com/VitorMachadoSilva/ReservationSystem/internal/usecase/get_room_schedule"
)

// OccupiedSlot HTTP projection of a reserved interval
type OccupiedSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Course    string `json:"course"`
	Status    string `json:"status"`
}

// FreeSlot HTTP projection of an unreserved gap
type FreeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	RoomID   uuid.UUID      `json:"roomId"`
	RoomName string         `json:"roomName"`
	Date     string         `json:"date"`
	Occupied []OccupiedSlot `json:"occupied"`
	Free     []FreeSlot     `json:"free"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getRoomSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Date:     resp.Date.Format(domain.DateFormat),
		Occupied: make([]OccupiedSlot, len(resp.Occupied)),
		Free:     make([]FreeSlot, len(resp.Free)),
	}
	for i, slot := range resp.Occupied {
		out.Occupied[i] = OccupiedSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Course:    slot.Course,
			Status:    slot.Status,
		}
	}
	for i, slot := range resp.Free {
		out.Free[i] = FreeSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}
	return out
}
