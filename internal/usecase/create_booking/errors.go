package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRequesterNotFound is returned when the requesting user does not exist
	ErrRequesterNotFound = errors.New("create_booking: requester not found")

	// ErrPermissionDenied is returned when the requester role may not book rooms
	ErrPermissionDenied = errors.New("create_booking: role is not allowed to create bookings")

	// ErrRoomNotFound is returned when the referenced room does not exist
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrInternal is returned for storage and other unclassified failures
	ErrInternal = errors.New("create_booking: internal error")
)

// Rule identifiers reported inside a ValidationError.
const (
	RuleRequiredFields = "required_fields"
	RuleTimeOrder      = "time_order"
	RuleMinDuration    = "min_duration"
	RuleLeadTime       = "lead_time"
	RuleCapacity       = "capacity"
	RuleRoomInactive   = "room_inactive"
)

// Violation is one failed business rule.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every violated rule of a rejected request.
// Rules are all evaluated, never short-circuited, so the caller can show
// the complete list at once. Storage details never leak through it.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	rules := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		rules[i] = v.Rule
	}
	return fmt.Sprintf("create_booking: validation failed: %s", strings.Join(rules, ", "))
}

// ConflictSummary identifies one overlapping booking, reduced to what the
// caller needs for reporting.
type ConflictSummary struct {
	Course    string `json:"course"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ConflictError carries the full set of bookings that collide with the
// requested interval, not just the fact that one exists.
type ConflictError struct {
	Conflicts []ConflictSummary
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_booking: time conflict with %d existing booking(s)", len(e.Conflicts))
}
