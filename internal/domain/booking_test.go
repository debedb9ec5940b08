package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VitorMachadoSilva/ReservationSystem/pkg/types"
)

func TestBookingOverlaps(t *testing.T) {
	b := &Booking{
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("12:00"),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"identical interval", "10:00", "12:00", true},
		{"partial overlap at end", "11:00", "13:00", true},
		{"partial overlap at start", "09:00", "11:00", true},
		{"contained", "10:30", "11:30", true},
		{"containing", "09:00", "13:00", true},
		{"back-to-back after", "12:00", "13:00", false},
		{"back-to-back before", "09:00", "10:00", false},
		{"disjoint", "14:00", "15:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Overlaps(types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingStatusLifecycle(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusApproved}).IsActive())
	assert.False(t, (&Booking{Status: StatusRejected}).IsActive())

	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusApproved}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusRejected}).IsTerminal())
}
