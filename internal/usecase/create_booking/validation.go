package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
)

// validate evaluates every business rule against the candidate request and
// returns the complete list of violations. Rules are independent: a single
// pass collects all of them so the caller never sees a partial report.
// room may be nil when required fields are missing; rules that need it are
// skipped in that case rather than reported twice.
func validate(req *Request, room *domain.Room, now time.Time) []Violation {
	violations := make([]Violation, 0)

	if v := checkRequiredFields(req); v != nil {
		violations = append(violations, *v)
	}
	if v := checkTimeOrder(req); v != nil {
		violations = append(violations, *v)
	}
	if v := checkMinDuration(req); v != nil {
		violations = append(violations, *v)
	}
	if v := checkLeadTime(req, now); v != nil {
		violations = append(violations, *v)
	}
	if room != nil {
		if v := checkCapacity(req, room); v != nil {
			violations = append(violations, *v)
		}
		if v := checkRoomActive(room); v != nil {
			violations = append(violations, *v)
		}
	}

	return violations
}

func checkRequiredFields(req *Request) *Violation {
	missing := req.RoomID == uuid.Nil ||
		req.Course == "" ||
		req.Date.IsZero() ||
		req.StartTime.IsZero() ||
		req.EndTime.IsZero() ||
		req.Students <= 0

	if missing {
		return &Violation{
			Rule:    RuleRequiredFields,
			Message: "Campos obrigatórios faltando: sala, disciplina, data, horários e número de alunos",
		}
	}
	return nil
}

func checkTimeOrder(req *Request) *Violation {
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil
	}
	if !req.EndTime.IsAfter(req.StartTime) {
		return &Violation{
			Rule:    RuleTimeOrder,
			Message: "O horário de término deve ser depois do horário de início",
		}
	}
	return nil
}

func checkMinDuration(req *Request) *Violation {
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil
	}
	minutes, err := req.StartTime.MinutesUntil(req.EndTime)
	if err != nil {
		return nil
	}
	if minutes < domain.MinDurationMinutes {
		return &Violation{
			Rule:    RuleMinDuration,
			Message: "A reserva deve ter no mínimo 1 hora de duração",
		}
	}
	return nil
}

// checkLeadTime enforces the advance-notice rule at calendar-day
// granularity: the booking date must be at least the next calendar day,
// so same-day requests are rejected regardless of the time of day.
func checkLeadTime(req *Request, now time.Time) *Violation {
	if req.Date.IsZero() {
		return nil
	}

	bookingDay := calendarDay(req.Date)
	earliestDay := calendarDay(now).AddDate(0, 0, domain.MinLeadTimeDays)

	if bookingDay.Before(earliestDay) {
		return &Violation{
			Rule:    RuleLeadTime,
			Message: "A reserva deve ser feita com no mínimo 24 horas de antecedência",
		}
	}
	return nil
}

func checkCapacity(req *Request, room *domain.Room) *Violation {
	if req.Students <= 0 {
		return nil
	}
	if !room.Fits(req.Students) {
		return &Violation{
			Rule:    RuleCapacity,
			Message: fmt.Sprintf("Sala comporta apenas %d alunos", room.Capacity),
		}
	}
	return nil
}

func checkRoomActive(room *domain.Room) *Violation {
	if !room.Active {
		return &Violation{
			Rule:    RuleRoomInactive,
			Message: "Sala desativada para novas reservas",
		}
	}
	return nil
}

// calendarDay reduces t to its calendar date anchored at UTC midnight.
// Request dates are parsed as midnight UTC while the clock runs in the
// server's local zone, so both sides must land in one location before
// day arithmetic compares them.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
