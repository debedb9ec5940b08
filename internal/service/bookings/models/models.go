package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
)

var (
	// ErrInvalidStatus is returned for unknown status strings
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// ListBookingsRequest filters the booking listing. All fields optional.
type ListBookingsRequest struct {
	Date        *time.Time
	Status      *string
	ProfessorID *uuid.UUID
}

// UpdateStatusRequest asks for a PENDING booking to be approved or rejected.
// The actor is always explicit; the service never reads ambient session state.
type UpdateStatusRequest struct {
	ActorID   uuid.UUID
	ActorRole domain.Role
	Status    string
}

// DeleteBookingRequest asks for a booking to be removed.
type DeleteBookingRequest struct {
	ActorID   uuid.UUID
	ActorRole domain.Role
}

// ToDomainFilter converts the listing request into a domain filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:        r.Date,
		ProfessorID: r.ProfessorID,
	}
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// Response models

// RoomSummary is the denormalized room projection embedded in responses.
type RoomSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Capacity int       `json:"capacity"`
	Building string    `json:"building"`
}

// ProfessorSummary is the denormalized creator projection embedded in responses.
type ProfessorSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BookingResponse is one booking with its read-time joins.
type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	Course    string    `json:"course"`
	Date      string    `json:"date"`      // "2025-06-10"
	StartTime string    `json:"startTime"` // "10:00"
	EndTime   string    `json:"endTime"`   // "12:00"
	Students  int       `json:"students"`
	Notes     *string   `json:"notes,omitempty"`
	Status    string    `json:"status"`

	Room      *RoomSummary      `json:"room,omitempty"`
	Professor *ProfessorSummary `json:"professor,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is an ordered booking listing.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DashboardResponse is the "what is happening now" projection: today's
// approved bookings split around the current wall-clock time, plus the
// number of requests awaiting review.
type DashboardResponse struct {
	Date         string            `json:"date"`
	Now          string            `json:"now"`
	InProgress   []BookingResponse `json:"inProgress"`
	Upcoming     []BookingResponse `json:"upcoming"`
	PendingCount int               `json:"pendingCount"`
}

// Conversion helpers

// FromDomainBooking converts a domain booking plus its joined summaries
// into a response DTO. room and professor may be nil when unresolved.
func FromDomainBooking(b *domain.Booking, room *domain.Room, professor *domain.User) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID,
		Course:    b.Course,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Students:  b.Students,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if room != nil {
		resp.Room = &RoomSummary{
			ID:       room.ID,
			Name:     room.Name,
			Type:     string(room.Type),
			Capacity: room.Capacity,
			Building: room.Building,
		}
	}
	if professor != nil {
		resp.Professor = &ProfessorSummary{
			ID:    professor.ID,
			Name:  professor.Name,
			Email: professor.Email,
		}
	}
	return resp
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	switch s {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
		return s, nil
	}
	return "", ErrInvalidStatus
}
