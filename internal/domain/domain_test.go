package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleReceptionist.IsValid())
	assert.True(t, RoleClient.IsValid())
	assert.False(t, Role("owner").IsValid())
}

func TestTimeSlot_IsAvailable(t *testing.T) {
	tests := []struct {
		status SlotStatus
		want   bool
	}{
		{SlotAvailable, true},
		{SlotBooked, false},
		{SlotFull, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			s := TimeSlot{Status: tt.status}
			assert.Equal(t, tt.want, s.IsAvailable())
		})
	}
}

func TestBooking_IsPending(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsPending())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsPending())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsPending())
}
