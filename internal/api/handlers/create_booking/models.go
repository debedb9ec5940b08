package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	createBooking "github.com/VitorMachadoSilva/ReservationSystem/internal/usecase/create_booking"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID    string  `json:"roomId"`
	Course    string  `json:"course"`
	Date      string  `json:"date"`      // "2025-06-10"
	StartTime string  `json:"startTime"` // "10:00"
	EndTime   string  `json:"endTime"`   // "12:00"
	Students  int     `json:"students"`
	Notes     *string `json:"notes,omitempty"`
}

// RoomSummary HTTP projection of the booked room
type RoomSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Capacity int       `json:"capacity"`
	Building string    `json:"building"`
}

// ProfessorSummary HTTP projection of the requesting professor
type ProfessorSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        uuid.UUID        `json:"id"`
	Course    string           `json:"course"`
	Date      string           `json:"date"`
	StartTime string           `json:"startTime"`
	EndTime   string           `json:"endTime"`
	Students  int              `json:"students"`
	Notes     *string          `json:"notes,omitempty"`
	Status    string           `json:"status"`
	Room      RoomSummary      `json:"room"`
	Professor ProfessorSummary `json:"professor"`
	CreatedAt string           `json:"createdAt"`
}

// ValidationErrorResponse lists every violated business rule.
type ValidationErrorResponse struct {
	Error      string                    `json:"error"`
	Violations []createBooking.Violation `json:"violations"`
}

// ConflictErrorResponse lists every overlapping booking.
type ConflictErrorResponse struct {
	Error     string                          `json:"error"`
	Conflicts []createBooking.ConflictSummary `json:"conflicts"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date, the time strings and the room id.
func (r *CreateBookingRequest) ToUseCaseRequest(requesterID uuid.UUID) (*createBooking.Request, error) {
	roomID, err := uuid.Parse(r.RoomID)
	if err != nil {
		return nil, errInvalidRoomID
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		RequesterID: requesterID,
		RoomID:      roomID,
		Course:      r.Course,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Students:    r.Students,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		Course:    resp.Course,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Students:  resp.Students,
		Notes:     resp.Notes,
		Status:    resp.Status,
		Room: RoomSummary{
			ID:       resp.Room.ID,
			Name:     resp.Room.Name,
			Type:     resp.Room.Type,
			Capacity: resp.Room.Capacity,
			Building: resp.Room.Building,
		},
		Professor: ProfessorSummary{
			ID:    resp.Professor.ID,
			Name:  resp.Professor.Name,
			Email: resp.Professor.Email,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
