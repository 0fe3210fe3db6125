package wizard

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		resp        *salonapi.Response[domain.Booking]
		err         error
		wantKind    OutcomeKind
		wantMessage string
	}{
		{
			name:        "success message shown verbatim",
			resp:        &salonapi.Response[domain.Booking]{Data: domain.Booking{ID: 7}, Message: "Booking created! Check your email for the PIN."},
			wantKind:    OutcomeSuccess,
			wantMessage: "Booking created! Check your email for the PIN.",
		},
		{
			name:        "success without message",
			resp:        &salonapi.Response[domain.Booking]{Data: domain.Booking{ID: 7}},
			wantKind:    OutcomeSuccess,
			wantMessage: "Booking created successfully",
		},
		{
			name:        "already booked in 2xx message",
			resp:        &salonapi.Response[domain.Booking]{Message: "You have already booked this slot"},
			wantKind:    OutcomeConflict,
			wantMessage: "You have already booked this slot",
		},
		{
			name:        "fully booked in 2xx message",
			resp:        &salonapi.Response[domain.Booking]{Message: "This slot is Fully Booked"},
			wantKind:    OutcomeSlotFull,
			wantMessage: "This slot is Fully Booked",
		},
		{
			name:        "structured code wins over message",
			err:         &salonapi.APIError{StatusCode: http.StatusBadRequest, Code: salonapi.CodeSlotFull, Message: "Cannot book"},
			wantKind:    OutcomeSlotFull,
			wantMessage: "Cannot book",
		},
		{
			name:        "already booked code without message",
			err:         &salonapi.APIError{StatusCode: http.StatusBadRequest, Code: salonapi.CodeAlreadyBooked},
			wantKind:    OutcomeConflict,
			wantMessage: conflictNotice,
		},
		{
			name:        "409 is a conflict",
			err:         &salonapi.APIError{StatusCode: http.StatusConflict, Message: "Slot taken"},
			wantKind:    OutcomeConflict,
			wantMessage: "Slot taken",
		},
		{
			name:        "409 with fully booked message is slot full",
			err:         &salonapi.APIError{StatusCode: http.StatusConflict, Message: "This time slot is fully booked"},
			wantKind:    OutcomeSlotFull,
			wantMessage: "This time slot is fully booked",
		},
		{
			name:        "substring fallback on error message",
			err:         &salonapi.APIError{StatusCode: http.StatusBadRequest, Message: "This time slot is already booked"},
			wantKind:    OutcomeConflict,
			wantMessage: "This time slot is already booked",
		},
		{
			name:        "other failure",
			err:         &salonapi.APIError{StatusCode: http.StatusBadRequest, Message: "Invalid email"},
			wantKind:    OutcomeFailure,
			wantMessage: "Invalid email",
		},
		{
			name:        "transport failure uses fallback",
			err:         errors.New("dial tcp: connection refused"),
			wantKind:    OutcomeFailure,
			wantMessage: "Failed to create booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Classify(tt.resp, tt.err)
			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, tt.wantMessage, out.Message)
		})
	}
}

func TestApply(t *testing.T) {
	s := sessionAt(t, StepPayment)

	s.Apply(Outcome{Kind: OutcomeConflict, Message: "already booked"})
	assert.Equal(t, StepPayment, s.Step)
	assert.False(t, s.Submitted)
	assert.Equal(t, &Alert{Kind: OutcomeConflict, Message: "already booked"}, s.Alert)

	s.DismissAlert()
	assert.Nil(t, s.Alert)
	assert.Equal(t, StepPayment, s.Step)

	s.Apply(Outcome{Kind: OutcomeSuccess, Message: "Booked"})
	assert.True(t, s.Submitted)
	_, err := s.Next()
	assert.ErrorIs(t, err, ErrSubmitted)
}
