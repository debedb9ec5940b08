package get_room_schedule

import "github.com/VitorMachadoSilva/ReservationSystem/internal/domain"

// freeSlots computes the unreserved gaps between campus opening and closing
// times, given the day's active bookings ordered by start time. Intervals
// are half-open, so a gap ends exactly where the next booking starts and
// back-to-back bookings leave no gap between them.
func freeSlots(bookings []*domain.Booking) []FreeSlot {
	free := make([]FreeSlot, 0)
	cursor := domain.CampusOpenTime

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if cursor.IsBefore(b.StartTime) {
			free = append(free, FreeSlot{StartTime: cursor, EndTime: b.StartTime})
		}
		if cursor.IsBefore(b.EndTime) {
			cursor = b.EndTime
		}
	}

	if cursor.IsBefore(domain.CampusCloseTime) {
		free = append(free, FreeSlot{StartTime: cursor, EndTime: domain.CampusCloseTime})
	}
	return free
}

// occupiedSlots projects the day's active bookings onto the timeline.
func occupiedSlots(bookings []*domain.Booking) []OccupiedSlot {
	occupied := make([]OccupiedSlot, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		occupied = append(occupied, OccupiedSlot{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Course:    b.Course,
			Status:    string(b.Status),
		})
	}
	return occupied
}
