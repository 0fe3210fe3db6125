package domain

import "time"

// BookingStatus represents the status of a booking as reported by the backend
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a booking returned by the salon API
type Booking struct {
	ID            int64         `json:"id"`
	ServiceID     int64         `json:"serviceId"`
	ServiceName   string        `json:"serviceName,omitempty"`
	SlotID        int64         `json:"slotId"`
	Date          string        `json:"date"`
	StartTime     string        `json:"startTime,omitempty"`
	Email         string        `json:"email"`
	PaymentMethod string        `json:"paymentMethod"`
	Amount        float64       `json:"amount"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// IsPending returns true if the booking still waits for PIN confirmation
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// BookingDraft is assembled from the wizard session at the payment step and sent once
type BookingDraft struct {
	ServiceID     int64   `json:"serviceId"`
	SlotID        int64   `json:"slotId"`
	Date          string  `json:"date"`
	Email         string  `json:"email"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
}

// BookingsFilter фильтр списка бронирований на дашбордах
type BookingsFilter struct {
	Date      *string        // YYYY-MM-DD
	Status    *BookingStatus
	ServiceID *int64
}
