package wizard

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
	"github.com/m04kA/SMC-SalonWeb/pkg/logger"
)

type mockSlots struct {
	mock.Mock
}

func (m *mockSlots) FetchAvailable(ctx context.Context, serviceID int64, date string) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, serviceID, date)
	slots, _ := args.Get(0).([]domain.TimeSlot)
	return slots, args.Error(1)
}

func (m *mockSlots) FindByID(id int64) (domain.TimeSlot, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.TimeSlot), args.Bool(1)
}

type mockBookings struct {
	mock.Mock
}

func (m *mockBookings) Create(ctx context.Context, draft domain.BookingDraft) (*salonapi.Response[domain.Booking], error) {
	args := m.Called(ctx, draft)
	resp, _ := args.Get(0).(*salonapi.Response[domain.Booking])
	return resp, args.Error(1)
}

func newTestFlow() (*Flow, *mockSlots, *mockBookings) {
	slots := new(mockSlots)
	bookings := new(mockBookings)
	return NewFlow(newTestSession(), slots, bookings, logger.NewNop()), slots, bookings
}

// flowAtPayment проводит мастер до шага оплаты и выбирает карту
func flowAtPayment(t *testing.T, ctx context.Context) (*Flow, *mockSlots, *mockBookings) {
	t.Helper()
	f, slots, bookings := newTestFlow()

	slots.On("FetchAvailable", ctx, int64(3), "2026-11-01").Return([]domain.TimeSlot{availableSlot}, nil).Once()
	slots.On("FindByID", int64(10)).Return(availableSlot, true)

	_, err := f.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.SelectSlot(10))
	_, err = f.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.SetEmail(" user@example.com "))
	_, err = f.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.SetConfirmed(true))
	_, err = f.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.SetPaymentMethod(domain.PaymentCard))
	require.Equal(t, StepPayment, f.View().Step)
	return f, slots, bookings
}

func TestFlow_SlotFetchOnlyOnEnteringTimeStep(t *testing.T) {
	ctx := context.Background()
	f, slots, _ := flowAtPayment(t, ctx)

	slots.AssertNumberOfCalls(t, "FetchAvailable", 1)
	slots.AssertExpectations(t)

	view := f.View()
	assert.Equal(t, "user@example.com", view.Email)
	assert.Equal(t, "payment", view.StepName)
	assert.False(t, view.CanAdvance)
}

func TestFlow_SelectSlotNotFetched(t *testing.T) {
	ctx := context.Background()
	f, slots, _ := newTestFlow()

	slots.On("FetchAvailable", ctx, int64(3), "2026-11-01").Return([]domain.TimeSlot{}, nil).Once()
	slots.On("FindByID", int64(99)).Return(domain.TimeSlot{}, false)

	_, err := f.Next(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, f.SelectSlot(99), ErrSlotUnavailable)

	_, err = f.Next(ctx)
	assert.ErrorIs(t, err, ErrSlotRequired)
	assert.False(t, f.View().CanAdvance)
}

func TestFlow_SlotFetchFailureRaisesAlert(t *testing.T) {
	ctx := context.Background()
	f, slots, _ := newTestFlow()

	rejected := &store.RejectedError{Op: "slots/fetch", Message: "Service is not available on this date"}
	slots.On("FetchAvailable", ctx, int64(3), "2026-11-01").Return(nil, rejected).Once()

	_, err := f.Next(ctx)
	require.NoError(t, err)

	view := f.View()
	assert.Equal(t, StepTime, view.Step)
	require.NotNil(t, view.Alert)
	assert.Equal(t, OutcomeFailure, view.Alert.Kind)
	assert.Equal(t, "Service is not available on this date", view.Alert.Message)
}

func TestFlow_BackFromDateNavigates(t *testing.T) {
	f, slots, _ := newTestFlow()

	effect := f.Back(context.Background())
	assert.Equal(t, EffectNavigate, effect.Kind)
	assert.Equal(t, ServicesPath, effect.Path)
	slots.AssertNotCalled(t, "FetchAvailable", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlow_Submit_Success(t *testing.T) {
	ctx := context.Background()
	f, _, bookings := flowAtPayment(t, ctx)

	draft := domain.BookingDraft{
		ServiceID: 3, SlotID: 10, Date: "2026-11-01", Email: "user@example.com",
		PaymentMethod: domain.PaymentCard, Amount: 45,
	}
	bookings.On("Create", ctx, draft).Return(&salonapi.Response[domain.Booking]{
		Data:    domain.Booking{ID: 42, Status: domain.StatusPending},
		Message: "Booking created. A PIN was sent to user@example.com",
	}, nil).Once()

	out, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out.Kind)
	assert.Equal(t, "Booking created. A PIN was sent to user@example.com", out.Message)
	require.NotNil(t, out.Booking)
	assert.Equal(t, int64(42), out.Booking.ID)
	assert.True(t, f.Submitted())

	_, err = f.Submit(ctx)
	assert.ErrorIs(t, err, ErrSubmitted)
	bookings.AssertNumberOfCalls(t, "Create", 1)
}

func TestFlow_Submit_AlreadyBookedStaysOnPayment(t *testing.T) {
	ctx := context.Background()
	f, _, bookings := flowAtPayment(t, ctx)

	bookings.On("Create", ctx, mock.AnythingOfType("domain.BookingDraft")).Return(
		&salonapi.Response[domain.Booking]{Message: "This slot is already booked"}, nil,
	).Once()

	out, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeConflict, out.Kind)

	view := f.View()
	assert.Equal(t, StepPayment, view.Step)
	assert.False(t, view.Submitted)
	require.NotNil(t, view.Alert)
	assert.Equal(t, OutcomeConflict, view.Alert.Kind)
	assert.Equal(t, "user@example.com", view.Email)
	require.NotNil(t, view.Slot)
	assert.Equal(t, int64(10), view.Slot.ID)
	bookings.AssertNumberOfCalls(t, "Create", 1)
}

func TestFlow_Submit_FailureAllowsResubmit(t *testing.T) {
	ctx := context.Background()
	f, _, bookings := flowAtPayment(t, ctx)

	bookings.On("Create", ctx, mock.AnythingOfType("domain.BookingDraft")).Return(
		nil, &store.RejectedError{Op: "bookings/create", Message: "Failed to create booking", Err: &salonapi.APIError{StatusCode: http.StatusBadGateway}},
	).Once()

	out, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, out.Kind)
	assert.Equal(t, StepPayment, f.View().Step)

	f.DismissAlert()
	assert.Nil(t, f.View().Alert)

	bookings.On("Create", ctx, mock.AnythingOfType("domain.BookingDraft")).Return(
		&salonapi.Response[domain.Booking]{Data: domain.Booking{ID: 5}}, nil,
	).Once()
	out, err = f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, out.Kind)
	bookings.AssertNumberOfCalls(t, "Create", 2)
}

func TestFlow_Submit_RequiresPaymentMethod(t *testing.T) {
	ctx := context.Background()
	f, _, bookings := flowAtPayment(t, ctx)

	require.NoError(t, f.SetPaymentMethod(""))
	_, err := f.Submit(ctx)
	assert.ErrorIs(t, err, ErrPaymentRequired)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
