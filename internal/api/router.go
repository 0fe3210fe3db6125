package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	accountsHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/accounts"
	authHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/auth"
	bookingWizardHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/booking_wizard"
	bookingsHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/bookings"
	catalogHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/catalog"
	clientsHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/clients"
	dashboardHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/dashboard"
	notificationsHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/notifications"
	pagesHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/pages"
	slotsHandler "github.com/m04kA/SMC-SalonWeb/internal/api/handlers/slots"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/session"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps зависимости роутера
type Deps struct {
	Sessions *session.Manager
	Cookie   middleware.CookieOptions
	// Metrics nil - без метрик
	Metrics     middleware.HTTPMetrics
	MetricsPath string
	MetricsHTTP http.Handler
	// RateLimiter nil - без ограничения
	RateLimiter *middleware.RateLimiter
	Clock       func() time.Time
	Logger      Logger
}

// NewRouter собирает маршруты /api/v1 с гейтами по ролям
func NewRouter(d Deps) *mux.Router {
	pages := pagesHandler.NewHandler(d.Logger)
	auth := authHandler.NewHandler(d.Logger)
	bookingWizard := bookingWizardHandler.NewHandler(d.Sessions, d.Clock, d.Logger)
	catalog := catalogHandler.NewHandler(d.Logger)
	slots := slotsHandler.NewHandler(d.Logger)
	bookings := bookingsHandler.NewHandler(d.Logger)
	accounts := accountsHandler.NewHandler(d.Logger)
	notifications := notificationsHandler.NewHandler(d.Logger)
	clients := clientsHandler.NewHandler(d.Logger)
	dashboard := dashboardHandler.NewHandler(d.Clock, d.Logger)

	r := mux.NewRouter()

	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
	}
	if d.MetricsHTTP != nil {
		r.Handle(d.MetricsPath, d.MetricsHTTP).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	if d.RateLimiter != nil {
		api.Use(d.RateLimiter.Middleware())
	}
	api.Use(middleware.Session(d.Sessions, d.Cookie))

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/pages/home", pages.Home).Methods(http.MethodGet)
	api.HandleFunc("/pages/services", pages.Services).Methods(http.MethodGet)
	api.HandleFunc("/pages/services/{serviceId}", pages.Service).Methods(http.MethodGet)

	api.HandleFunc("/auth/login", auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", auth.Session).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	api.HandleFunc("/booking/{serviceId}/wizard", bookingWizard.Mount).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard", bookingWizard.Get).Methods(http.MethodGet)
	api.HandleFunc("/booking/wizard", bookingWizard.Discard).Methods(http.MethodDelete)
	api.HandleFunc("/booking/wizard/date", bookingWizard.SetDate).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/slot", bookingWizard.SelectSlot).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/email", bookingWizard.SetEmail).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/confirmation", bookingWizard.SetConfirmation).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/payment", bookingWizard.SetPayment).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/alert/dismiss", bookingWizard.DismissAlert).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/next", bookingWizard.Next).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/back", bookingWizard.Back).Methods(http.MethodPost)
	api.HandleFunc("/booking/wizard/submit", bookingWizard.Submit).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/dashboard", dashboard.Admin).Methods(http.MethodGet)

	admin.HandleFunc("/categories", catalog.ListCategories).Methods(http.MethodGet)
	admin.HandleFunc("/categories", catalog.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{categoryId}", catalog.UpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{categoryId}/status", catalog.SetCategoryStatus).Methods(http.MethodPatch)

	admin.HandleFunc("/services", catalog.ListServices).Methods(http.MethodGet)
	admin.HandleFunc("/services", catalog.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", catalog.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}/status", catalog.SetServiceStatus).Methods(http.MethodPatch)

	admin.HandleFunc("/rooms", catalog.ListRooms).Methods(http.MethodGet)
	admin.HandleFunc("/rooms", catalog.CreateRoom).Methods(http.MethodPost)

	admin.HandleFunc("/time-slots", slots.List).Methods(http.MethodGet)
	admin.HandleFunc("/time-slots", slots.Create).Methods(http.MethodPost)
	admin.HandleFunc("/time-slots/{slotId}", slots.Update).Methods(http.MethodPut)

	admin.HandleFunc("/accounts", accounts.List).Methods(http.MethodGet)
	admin.HandleFunc("/accounts", accounts.Create).Methods(http.MethodPost)
	admin.HandleFunc("/accounts/{accountId}/status", accounts.SetStatus).Methods(http.MethodPatch)

	admin.HandleFunc("/bookings", bookings.List).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", bookings.Get).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/cancel", bookings.Cancel).Methods(http.MethodPost)

	admin.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/read-all", notifications.MarkAllRead).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/{notificationId}/read", notifications.MarkRead).Methods(http.MethodPost)

	// ============================================================
	// RECEPTION ROUTES (роли receptionist и admin)
	// ============================================================

	reception := api.PathPrefix("/reception").Subrouter()
	reception.Use(middleware.RequireRole(domain.RoleReceptionist, domain.RoleAdmin))

	reception.HandleFunc("/dashboard", dashboard.Reception).Methods(http.MethodGet)

	reception.HandleFunc("/bookings", bookings.List).Methods(http.MethodGet)
	reception.HandleFunc("/bookings/{bookingId}", bookings.Get).Methods(http.MethodGet)
	reception.HandleFunc("/bookings/{bookingId}/confirm", bookings.Confirm).Methods(http.MethodPost)
	reception.HandleFunc("/bookings/{bookingId}/cancel", bookings.Cancel).Methods(http.MethodPost)

	reception.HandleFunc("/clients", clients.List).Methods(http.MethodGet)

	reception.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	reception.HandleFunc("/notifications/read-all", notifications.MarkAllRead).Methods(http.MethodPost)
	reception.HandleFunc("/notifications/{notificationId}/read", notifications.MarkRead).Methods(http.MethodPost)

	return r
}
