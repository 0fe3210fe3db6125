package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

// AuthAPI вызовы аутентификации
type AuthAPI interface {
	Login(ctx context.Context, req salonapi.LoginRequest) (*salonapi.Response[salonapi.LoginResult], error)
	Logout(ctx context.Context) (*salonapi.Response[struct{}], error)
	Me(ctx context.Context) (*salonapi.Response[domain.User], error)
}

// AdminAPI вызовы управления учетными записями сотрудников
type AdminAPI interface {
	ListAdmins(ctx context.Context) (*salonapi.Response[[]domain.AdminAccount], error)
	CreateAdmin(ctx context.Context, req salonapi.CreateAccountRequest) (*salonapi.Response[domain.AdminAccount], error)
	SetAdminStatus(ctx context.Context, id int64, active bool) (*salonapi.Response[domain.AdminAccount], error)
}

// CategoryAPI вызовы категорий
type CategoryAPI interface {
	ListCategories(ctx context.Context) (*salonapi.Response[[]domain.Category], error)
	CreateCategory(ctx context.Context, in salonapi.CategoryInput) (*salonapi.Response[domain.Category], error)
	UpdateCategory(ctx context.Context, id int64, in salonapi.CategoryInput) (*salonapi.Response[domain.Category], error)
	SetCategoryStatus(ctx context.Context, id int64, active bool) (*salonapi.Response[domain.Category], error)
}

// ServiceAPI вызовы услуг
type ServiceAPI interface {
	ListServices(ctx context.Context, categoryID int64) (*salonapi.Response[[]domain.Service], error)
	GetService(ctx context.Context, id int64) (*salonapi.Response[domain.Service], error)
	CreateService(ctx context.Context, in salonapi.ServiceInput) (*salonapi.Response[domain.Service], error)
	UpdateService(ctx context.Context, id int64, in salonapi.ServiceInput) (*salonapi.Response[domain.Service], error)
	SetServiceStatus(ctx context.Context, id int64, active bool) (*salonapi.Response[domain.Service], error)
}

// SlotAPI вызовы временных слотов
type SlotAPI interface {
	ListAvailableSlots(ctx context.Context, serviceID int64, date string) (*salonapi.Response[[]domain.TimeSlot], error)
	CreateSlot(ctx context.Context, in salonapi.SlotInput) (*salonapi.Response[domain.TimeSlot], error)
	UpdateSlot(ctx context.Context, id int64, in salonapi.SlotInput) (*salonapi.Response[domain.TimeSlot], error)
}

// BookingAPI вызовы бронирований
type BookingAPI interface {
	ListBookings(ctx context.Context, filter domain.BookingsFilter) (*salonapi.Response[[]domain.Booking], error)
	GetBooking(ctx context.Context, id int64) (*salonapi.Response[domain.Booking], error)
	CreateBooking(ctx context.Context, draft domain.BookingDraft) (*salonapi.Response[domain.Booking], error)
	ConfirmBooking(ctx context.Context, id int64, req salonapi.ConfirmBookingRequest) (*salonapi.Response[domain.Booking], error)
	CancelBooking(ctx context.Context, id int64, req salonapi.CancelBookingRequest) (*salonapi.Response[domain.Booking], error)
}

// RoomAPI вызовы кабинетов
type RoomAPI interface {
	ListRooms(ctx context.Context) (*salonapi.Response[[]domain.Room], error)
	CreateRoom(ctx context.Context, in salonapi.RoomInput) (*salonapi.Response[domain.Room], error)
}

// NotificationAPI вызовы уведомлений
type NotificationAPI interface {
	ListNotifications(ctx context.Context) (*salonapi.Response[[]domain.Notification], error)
	MarkNotificationRead(ctx context.Context, id int64) (*salonapi.Response[domain.Notification], error)
	MarkAllNotificationsRead(ctx context.Context) (*salonapi.Response[struct{}], error)
}

// ClientAPI вызовы клиентской базы
type ClientAPI interface {
	ListClients(ctx context.Context) (*salonapi.Response[[]domain.Client], error)
}

// API полный набор вызовов, реализуется *salonapi.Client
type API interface {
	AuthAPI
	AdminAPI
	CategoryAPI
	ServiceAPI
	SlotAPI
	BookingAPI
	RoomAPI
	NotificationAPI
	ClientAPI
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
