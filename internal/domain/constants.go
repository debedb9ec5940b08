package domain

import "github.com/VitorMachadoSilva/ReservationSystem/pkg/types"

// Booking business rules.
const (
	// MinLeadTimeDays is the minimum advance notice for a reservation,
	// compared at calendar-day granularity: the booking date must be at
	// least the next calendar day, so same-day requests are always rejected.
	MinLeadTimeDays = 1

	// MinDurationMinutes is the minimum booking length.
	MinDurationMinutes = 60

	MaxCourseLength = 200
	MaxNotesLength  = 500
)

// Campus opening hours bound the schedule projection.
const (
	CampusOpenTime  types.TimeString = "07:00"
	CampusCloseTime types.TimeString = "23:00"
)

// Institutional e-mail domains.
const (
	InstitutionEmailDomain = "fmpsc.edu.br"
	StudentEmailDomain     = "aluno.fmpsc.edu.br"
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses that occupy a time slot.
// Used when filtering bookings for conflict detection.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}
