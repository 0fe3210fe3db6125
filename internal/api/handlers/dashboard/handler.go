package dashboard

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/pkg/ptr"
)

// Handler сводные страницы дашбордов. Каждая карточка грузится своим слайсом,
// ошибка одной карточки не прячет остальные.
type Handler struct {
	clock  func() time.Time
	logger Logger
}

func NewHandler(clock func() time.Time, logger Logger) *Handler {
	if clock == nil {
		clock = time.Now
	}
	return &Handler{clock: clock, logger: logger}
}

// Admin GET /api/v1/admin/dashboard
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	st := sess.Store

	var firstErr error
	var errs []string
	collect := func(err error) {
		if err == nil {
			return
		}
		if firstErr == nil {
			firstErr = err
		}
		errs = append(errs, err.Error())
	}

	_, err := st.Categories.FetchAll(ctx)
	collect(err)
	_, err = st.Services.FetchAll(ctx, 0)
	collect(err)
	_, err = st.Bookings.FetchAll(ctx, domain.BookingsFilter{})
	collect(err)
	_, err = st.Notifications.FetchAll(ctx)
	collect(err)

	if firstErr != nil {
		h.logger.Warn("GET /admin/dashboard - Some cards failed to load: %v", errs)
	}

	bookings := st.Bookings.Snapshot().Items
	pending, confirmed, revenue := summarize(bookings)
	active := 0
	for _, s := range st.Services.Snapshot().Items {
		if s.IsActive {
			active++
		}
	}

	handlers.RespondState(w, firstErr, AdminDashboard{
		Summary: Summary{
			Categories:          len(st.Categories.Snapshot().Items),
			ActiveServices:      active,
			Bookings:            len(bookings),
			PendingBookings:     pending,
			ConfirmedBookings:   confirmed,
			Revenue:             revenue,
			UnreadNotifications: st.Notifications.UnreadCount(),
		},
		RecentBookings: recent(bookings, recentLimit),
		Errors:         errs,
	})
}

// Reception GET /api/v1/reception/dashboard
func (h *Handler) Reception(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	st := sess.Store

	today := h.clock().Format(domain.DateFormat)

	var errs []string
	_, bookingsErr := st.Bookings.FetchAll(ctx, domain.BookingsFilter{Date: ptr.Ptr(today)})
	if bookingsErr != nil {
		errs = append(errs, bookingsErr.Error())
	}
	_, notifErr := st.Notifications.FetchAll(ctx)
	if notifErr != nil {
		errs = append(errs, notifErr.Error())
	}

	err := bookingsErr
	if err == nil {
		err = notifErr
	}
	if err != nil {
		h.logger.Warn("GET /reception/dashboard - Some cards failed to load: %v", errs)
	}

	bookings := st.Bookings.Snapshot().Items
	pending, _, _ := summarize(bookings)

	handlers.RespondState(w, err, ReceptionDashboard{
		Date:                today,
		Bookings:            bookings,
		PendingBookings:     pending,
		UnreadNotifications: st.Notifications.UnreadCount(),
		Errors:              errs,
	})
}
