package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonWeb/pkg/logger"
)

var nopLog = logger.NewNop()

type mockAPI struct {
	mock.Mock
}

func result[T any](args mock.Arguments) (*salonapi.Response[T], error) {
	resp, _ := args.Get(0).(*salonapi.Response[T])
	return resp, args.Error(1)
}

func ok[T any](data T, message string) *salonapi.Response[T] {
	return &salonapi.Response[T]{Data: data, Message: message, StatusCode: 200}
}

func (m *mockAPI) Login(ctx context.Context, req salonapi.LoginRequest) (*salonapi.Response[salonapi.LoginResult], error) {
	return result[salonapi.LoginResult](m.Called(ctx, req))
}

func (m *mockAPI) Logout(ctx context.Context) (*salonapi.Response[struct{}], error) {
	return result[struct{}](m.Called(ctx))
}

func (m *mockAPI) Me(ctx context.Context) (*salonapi.Response[domain.User], error) {
	return result[domain.User](m.Called(ctx))
}

func (m *mockAPI) ListAdmins(ctx context.Context) (*salonapi.Response[[]domain.AdminAccount], error) {
	return result[[]domain.AdminAccount](m.Called(ctx))
}

func (m *mockAPI) CreateAdmin(ctx context.Context, req salonapi.CreateAccountRequest) (*salonapi.Response[domain.AdminAccount], error) {
	return result[domain.AdminAccount](m.Called(ctx, req))
}

func (m *mockAPI) SetAdminStatus(ctx context.Context, id int64, active bool) (*salonapi.Response[domain.AdminAccount], error) {
	return result[domain.AdminAccount](m.Called(ctx, id, active))
}

func (m *mockAPI) ListCategories(ctx context.Context) (*salonapi.Response[[]domain.Category], error) {
	return result[[]domain.Category](m.Called(ctx))
}

func (m *mockAPI) CreateCategory(ctx context.Context, in salonapi.CategoryInput) (*salonapi.Response[domain.Category], error) {
	return result[domain.Category](m.Called(ctx, in))
}

func (m *mockAPI) UpdateCategory(ctx context.Context, id int64, in salonapi.CategoryInput) (*salonapi.Response[domain.Category], error) {
	return result[domain.Category](m.Called(ctx, id, in))
}

func (m *mockAPI) SetCategoryStatus(ctx context.Context, id int64, active bool) (*salonapi.Response[domain.Category], error) {
	return result[domain.Category](m.Called(ctx, id, active))
}

func (m *mockAPI) ListServices(ctx context.Context, categoryID int64) (*salonapi.Response[[]domain.Service], error) {
	return result[[]domain.Service](m.Called(ctx, categoryID))
}

func (m *mockAPI) GetService(ctx context.Context, id int64) (*salonapi.Response[domain.Service], error) {
	return result[domain.Service](m.Called(ctx, id))
}

func (m *mockAPI) CreateService(ctx context.Context, in salonapi.ServiceInput) (*salonapi.Response[domain.Service], error) {
	return result[domain.Service](m.Called(ctx, in))
}

func (m *mockAPI) UpdateService(ctx context.Context, id int64, in salonapi.ServiceInput) (*salonapi.Response[domain.Service], error) {
	return result[domain.Service](m.Called(ctx, id, in))
}

func (m *mockAPI) SetServiceStatus(ctx context.Context, id int64, active bool) (*salonapi.Response[domain.Service], error) {
	return result[domain.Service](m.Called(ctx, id, active))
}

func (m *mockAPI) ListAvailableSlots(ctx context.Context, serviceID int64, date string) (*salonapi.Response[[]domain.TimeSlot], error) {
	return result[[]domain.TimeSlot](m.Called(ctx, serviceID, date))
}

func (m *mockAPI) CreateSlot(ctx context.Context, in salonapi.SlotInput) (*salonapi.Response[domain.TimeSlot], error) {
	return result[domain.TimeSlot](m.Called(ctx, in))
}

func (m *mockAPI) UpdateSlot(ctx context.Context, id int64, in salonapi.SlotInput) (*salonapi.Response[domain.TimeSlot], error) {
	return result[domain.TimeSlot](m.Called(ctx, id, in))
}

func (m *mockAPI) ListBookings(ctx context.Context, filter domain.BookingsFilter) (*salonapi.Response[[]domain.Booking], error) {
	return result[[]domain.Booking](m.Called(ctx, filter))
}

func (m *mockAPI) GetBooking(ctx context.Context, id int64) (*salonapi.Response[domain.Booking], error) {
	return result[domain.Booking](m.Called(ctx, id))
}

func (m *mockAPI) CreateBooking(ctx context.Context, draft domain.BookingDraft) (*salonapi.Response[domain.Booking], error) {
	return result[domain.Booking](m.Called(ctx, draft))
}

func (m *mockAPI) ConfirmBooking(ctx context.Context, id int64, req salonapi.ConfirmBookingRequest) (*salonapi.Response[domain.Booking], error) {
	return result[domain.Booking](m.Called(ctx, id, req))
}

func (m *mockAPI) CancelBooking(ctx context.Context, id int64, req salonapi.CancelBookingRequest) (*salonapi.Response[domain.Booking], error) {
	return result[domain.Booking](m.Called(ctx, id, req))
}

func (m *mockAPI) ListRooms(ctx context.Context) (*salonapi.Response[[]domain.Room], error) {
	return result[[]domain.Room](m.Called(ctx))
}

func (m *mockAPI) CreateRoom(ctx context.Context, in salonapi.RoomInput) (*salonapi.Response[domain.Room], error) {
	return result[domain.Room](m.Called(ctx, in))
}

func (m *mockAPI) ListNotifications(ctx context.Context) (*salonapi.Response[[]domain.Notification], error) {
	return result[[]domain.Notification](m.Called(ctx))
}

func (m *mockAPI) MarkNotificationRead(ctx context.Context, id int64) (*salonapi.Response[domain.Notification], error) {
	return result[domain.Notification](m.Called(ctx, id))
}

func (m *mockAPI) MarkAllNotificationsRead(ctx context.Context) (*salonapi.Response[struct{}], error) {
	return result[struct{}](m.Called(ctx))
}

func (m *mockAPI) ListClients(ctx context.Context) (*salonapi.Response[[]domain.Client], error) {
	return result[[]domain.Client](m.Called(ctx))
}

var _ API = (*mockAPI)(nil)
