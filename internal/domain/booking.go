package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

// BookingStatus represents the approval state of a reservation request.
type BookingStatus string

const (
	StatusPending  BookingStatus = "PENDING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// Booking represents a room reservation request in the system.
// It stores only foreign identifiers; room and professor summaries are
// joined at read time (see service models), never embedded here.
type Booking struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	ProfessorID uuid.UUID
	Course      string
	Date        time.Time // day granularity, midnight UTC
	StartTime   types.TimeString
	EndTime     types.TimeString // interval is half-open: [StartTime, EndTime)
	Students    int
	Notes       *string
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true when the booking occupies its time slot.
// Only active bookings participate in conflict detection.
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsTerminal returns true when no further status transition is possible.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// IsOwnedBy returns true when the booking was created by the given user.
// Ownership is fixed at creation and never transferred.
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.ProfessorID == userID
}

// Overlaps reports whether the booking's half-open interval intersects
// [start, end). Two intervals [s,e) and [s2,e2) intersect iff s < e2 && s2 < e;
// back-to-back bookings therefore never overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return start.IsBefore(b.EndTime) && b.StartTime.IsBefore(end)
}

// BookingsFilter filters booking listings. All fields are optional.
type BookingsFilter struct {
	Date        *time.Time     // exact calendar date
	Status      *BookingStatus // exact status
	ProfessorID *uuid.UUID     // owner
	RoomID      *uuid.UUID     // room
	ActiveOnly  bool           // restrict to PENDING and APPROVED
}
