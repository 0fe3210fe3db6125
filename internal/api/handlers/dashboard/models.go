package dashboard

import (
	"slices"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// Summary счетчики карточек дашборда
type Summary struct {
	Categories          int     `json:"categories"`
	ActiveServices      int     `json:"activeServices"`
	Bookings            int     `json:"bookings"`
	PendingBookings     int     `json:"pendingBookings"`
	ConfirmedBookings   int     `json:"confirmedBookings"`
	Revenue             float64 `json:"revenue"`
	UnreadNotifications int     `json:"unreadNotifications"`
}

// AdminDashboard сводка администратора
type AdminDashboard struct {
	Summary        Summary          `json:"summary"`
	RecentBookings []domain.Booking `json:"recentBookings"`
	Errors         []string         `json:"errors,omitempty"`
}

// ReceptionDashboard бронирования на сегодня у ресепшна
type ReceptionDashboard struct {
	Date                string           `json:"date"`
	Bookings            []domain.Booking `json:"bookings"`
	PendingBookings     int              `json:"pendingBookings"`
	UnreadNotifications int              `json:"unreadNotifications"`
	Errors              []string         `json:"errors,omitempty"`
}

const recentLimit = 5

// summarize выручка считается по ожидающим и подтвержденным бронированиям
func summarize(bookings []domain.Booking) (pending, confirmed int, revenue float64) {
	for i := range bookings {
		b := &bookings[i]
		switch {
		case b.IsPending():
			pending++
			revenue += b.Amount
		case b.Status == domain.StatusConfirmed:
			confirmed++
			revenue += b.Amount
		}
	}
	return pending, confirmed, revenue
}

// recent последние бронирования по времени создания
func recent(bookings []domain.Booking, limit int) []domain.Booking {
	out := make([]domain.Booking, len(bookings))
	copy(out, bookings)
	slices.SortStableFunc(out, func(a, b domain.Booking) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
