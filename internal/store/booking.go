package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

func bookingID(b domain.Booking) int64 { return b.ID }

// BookingSlice бронирования; Current - последнее созданное или открытое
type BookingSlice struct {
	*Slice[domain.Booking]
	api BookingAPI
}

func NewBookingSlice(api BookingAPI, log Logger) *BookingSlice {
	return &BookingSlice{Slice: newSlice[domain.Booking]("bookings", log), api: api}
}

func (s *BookingSlice) FetchAll(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error) {
	resp, err := thunk[domain.Booking, []domain.Booking]{
		op:       "fetch",
		fallback: "Failed to fetch bookings",
		call: func(ctx context.Context) (*salonapi.Response[[]domain.Booking], error) {
			return s.api.ListBookings(ctx, filter)
		},
		reduce: func(st *State[domain.Booking], data []domain.Booking) {
			st.Items = nonNil(data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *BookingSlice) FetchByID(ctx context.Context, id int64) (*domain.Booking, error) {
	resp, err := thunk[domain.Booking, domain.Booking]{
		op:       "fetchOne",
		fallback: "Failed to fetch booking",
		call: func(ctx context.Context) (*salonapi.Response[domain.Booking], error) {
			return s.api.GetBooking(ctx, id)
		},
		reduce: func(st *State[domain.Booking], data domain.Booking) {
			st.Current = &data
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Create отправляет черновик бронирования ровно одним запросом.
// Ответ возвращается целиком: текст message разбирает мастер бронирования.
func (s *BookingSlice) Create(ctx context.Context, draft domain.BookingDraft) (*salonapi.Response[domain.Booking], error) {
	return thunk[domain.Booking, domain.Booking]{
		op:       "create",
		fallback: "Failed to create booking",
		call: func(ctx context.Context) (*salonapi.Response[domain.Booking], error) {
			return s.api.CreateBooking(ctx, draft)
		},
		reduce: func(st *State[domain.Booking], data domain.Booking) {
			if data.ID == 0 {
				return
			}
			st.Current = &data
			st.Items = append(st.Items, data)
		},
	}.run(ctx, s.Slice)
}

// Confirm подтверждает бронирование PIN-кодом (ресепшн)
func (s *BookingSlice) Confirm(ctx context.Context, id int64, pin string) (*domain.Booking, error) {
	req := salonapi.ConfirmBookingRequest{PIN: pin}
	if err := validatePayload(req); err != nil {
		return nil, s.reject("confirm", err)
	}

	resp, err := thunk[domain.Booking, domain.Booking]{
		op:       "confirm",
		fallback: "Failed to confirm booking",
		success:  "Booking confirmed",
		call: func(ctx context.Context) (*salonapi.Response[domain.Booking], error) {
			return s.api.ConfirmBooking(ctx, id, req)
		},
		reduce: func(st *State[domain.Booking], data domain.Booking) {
			st.Items = replaceByID(st.Items, data, bookingID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Cancel отменяет бронирование
func (s *BookingSlice) Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	req := salonapi.CancelBookingRequest{Reason: reason}
	if err := validatePayload(req); err != nil {
		return nil, s.reject("cancel", err)
	}

	resp, err := thunk[domain.Booking, domain.Booking]{
		op:       "cancel",
		fallback: "Failed to cancel booking",
		success:  "Booking cancelled",
		call: func(ctx context.Context) (*salonapi.Response[domain.Booking], error) {
			return s.api.CancelBooking(ctx, id, req)
		},
		reduce: func(st *State[domain.Booking], data domain.Booking) {
			st.Items = replaceByID(st.Items, data, bookingID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
