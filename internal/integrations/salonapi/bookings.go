package salonapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// ListAvailableSlots GET /api/time-slots?serviceId=&date=
func (c *Client) ListAvailableSlots(ctx context.Context, serviceID int64, date string) (*Response[[]domain.TimeSlot], error) {
	query := url.Values{
		"serviceId": []string{strconv.FormatInt(serviceID, 10)},
		"date":      []string{date},
	}
	return call[[]domain.TimeSlot](ctx, c, http.MethodGet, "/api/time-slots", "/api/time-slots", query, nil)
}

// CreateSlot POST /api/time-slots
func (c *Client) CreateSlot(ctx context.Context, in SlotInput) (*Response[domain.TimeSlot], error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	return call[domain.TimeSlot](ctx, c, http.MethodPost, "/api/time-slots", "/api/time-slots", nil, body)
}

// UpdateSlot PUT /api/time-slots/{id}
func (c *Client) UpdateSlot(ctx context.Context, id int64, in SlotInput) (*Response[domain.TimeSlot], error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/time-slots/%d", id)
	return call[domain.TimeSlot](ctx, c, http.MethodPut, "/api/time-slots/{id}", path, nil, body)
}

// ListBookings GET /api/bookings
func (c *Client) ListBookings(ctx context.Context, filter domain.BookingsFilter) (*Response[[]domain.Booking], error) {
	query := url.Values{}
	if filter.Date != nil {
		query.Set("date", *filter.Date)
	}
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}
	if filter.ServiceID != nil {
		query.Set("serviceId", strconv.FormatInt(*filter.ServiceID, 10))
	}
	return call[[]domain.Booking](ctx, c, http.MethodGet, "/api/bookings", "/api/bookings", query, nil)
}

// GetBooking GET /api/bookings/{id}
func (c *Client) GetBooking(ctx context.Context, id int64) (*Response[domain.Booking], error) {
	path := fmt.Sprintf("/api/bookings/%d", id)
	return call[domain.Booking](ctx, c, http.MethodGet, "/api/bookings/{id}", path, nil, nil)
}

// CreateBooking POST /api/bookings.
// Сообщение ответа возвращается как есть: мастер бронирования показывает его пользователю.
func (c *Client) CreateBooking(ctx context.Context, draft domain.BookingDraft) (*Response[domain.Booking], error) {
	body, err := jsonBody(draft)
	if err != nil {
		return nil, err
	}
	return call[domain.Booking](ctx, c, http.MethodPost, "/api/bookings", "/api/bookings", nil, body)
}

// ConfirmBooking POST /api/bookings/{id}/confirm
func (c *Client) ConfirmBooking(ctx context.Context, id int64, req ConfirmBookingRequest) (*Response[domain.Booking], error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/bookings/%d/confirm", id)
	return call[domain.Booking](ctx, c, http.MethodPost, "/api/bookings/{id}/confirm", path, nil, body)
}

// CancelBooking POST /api/bookings/{id}/cancel
func (c *Client) CancelBooking(ctx context.Context, id int64, req CancelBookingRequest) (*Response[domain.Booking], error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/bookings/%d/cancel", id)
	return call[domain.Booking](ctx, c, http.MethodPost, "/api/bookings/{id}/cancel", path, nil, body)
}

// ListClients GET /api/bookings/clients
func (c *Client) ListClients(ctx context.Context) (*Response[[]domain.Client], error) {
	return call[[]domain.Client](ctx, c, http.MethodGet, "/api/bookings/clients", "/api/bookings/clients", nil, nil)
}
