package get_room_schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitorMachadoSilva/ReservationSystem/internal/domain"
	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

func booking(start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		Course:    "Anatomia I",
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
	}
}

func TestFreeSlots_EmptyDay(t *testing.T) {
	free := freeSlots(nil)

	require.Len(t, free, 1)
	assert.Equal(t, domain.CampusOpenTime, free[0].StartTime)
	assert.Equal(t, domain.CampusCloseTime, free[0].EndTime)
}

func TestFreeSlots_SingleBooking(t *testing.T) {
	free := freeSlots([]*domain.Booking{
		booking("10:00", "12:00", domain.StatusApproved),
	})

	require.Len(t, free, 2)
	assert.Equal(t, types.TimeString("07:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), free[0].EndTime)
	assert.Equal(t, types.TimeString("12:00"), free[1].StartTime)
	assert.Equal(t, types.TimeString("23:00"), free[1].EndTime)
}

func TestFreeSlots_BackToBackLeaveNoGap(t *testing.T) {
	free := freeSlots([]*domain.Booking{
		booking("10:00", "12:00", domain.StatusApproved),
		booking("12:00", "13:00", domain.StatusPending),
	})

	require.Len(t, free, 2)
	assert.Equal(t, types.TimeString("07:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), free[0].EndTime)
	assert.Equal(t, types.TimeString("13:00"), free[1].StartTime)
	assert.Equal(t, types.TimeString("23:00"), free[1].EndTime)
}

func TestFreeSlots_RejectedBookingsIgnored(t *testing.T) {
	free := freeSlots([]*domain.Booking{
		booking("10:00", "12:00", domain.StatusRejected),
	})

	require.Len(t, free, 1)
	assert.Equal(t, domain.CampusOpenTime, free[0].StartTime)
	assert.Equal(t, domain.CampusCloseTime, free[0].EndTime)
}

func TestFreeSlots_BookingAtOpeningEdge(t *testing.T) {
	free := freeSlots([]*domain.Booking{
		booking("07:00", "09:00", domain.StatusApproved),
	})

	require.Len(t, free, 1)
	assert.Equal(t, types.TimeString("09:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("23:00"), free[0].EndTime)
}

func TestFreeSlots_BookingAtClosingEdge(t *testing.T) {
	free := freeSlots([]*domain.Booking{
		booking("21:00", "23:00", domain.StatusApproved),
	})

	require.Len(t, free, 1)
	assert.Equal(t, types.TimeString("07:00"), free[0].StartTime)
	assert.Equal(t, types.TimeString("21:00"), free[0].EndTime)
}

func TestOccupiedSlots_SkipsRejected(t *testing.T) {
	occupied := occupiedSlots([]*domain.Booking{
		booking("08:00", "09:00", domain.StatusApproved),
		booking("10:00", "12:00", domain.StatusRejected),
		booking("14:00", "15:00", domain.StatusPending),
	})

	require.Len(t, occupied, 2)
	assert.Equal(t, "APPROVED", occupied[0].Status)
	assert.Equal(t, "PENDING", occupied[1].Status)
	assert.Equal(t, "Anatomia I", occupied[0].Course)
}
