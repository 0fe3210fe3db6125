package store

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

func TestCategorySlice_Create_Success(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewCategorySlice(api, nopLog)

	existing := []domain.Category{{ID: 1, Name: "Hair"}}
	api.On("ListCategories", ctx).Return(ok(existing, ""), nil).Once()
	_, err := s.FetchAll(ctx)
	require.NoError(t, err)

	in := salonapi.CategoryInput{Name: "Nails", IsActive: true}
	created := domain.Category{ID: 2, Name: "Nails", IsActive: true}
	api.On("CreateCategory", ctx, in).Return(ok(created, ""), nil).Once()

	got, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, created, *got)

	st := s.Snapshot()
	assert.Equal(t, []domain.Category{existing[0], created}, st.Items)
	assert.Equal(t, "Category created successfully", st.SuccessMessage)
	assert.Equal(t, StatusSucceeded, st.Status["create"])
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	api.AssertExpectations(t)
}

func TestCategorySlice_Create_ServerMessageWins(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewCategorySlice(api, nopLog)

	in := salonapi.CategoryInput{Name: "Spa"}
	api.On("CreateCategory", ctx, in).Return(ok(domain.Category{ID: 5, Name: "Spa"}, "Category saved"), nil).Once()

	_, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Category saved", s.Snapshot().SuccessMessage)
}

func TestCategorySlice_Create_Failure(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewCategorySlice(api, nopLog)

	existing := []domain.Category{{ID: 1, Name: "Hair"}}
	api.On("ListCategories", ctx).Return(ok(existing, ""), nil).Once()
	_, err := s.FetchAll(ctx)
	require.NoError(t, err)

	in := salonapi.CategoryInput{Name: "Hair"}
	apiErr := &salonapi.APIError{StatusCode: http.StatusBadRequest, Message: "Category name already exists"}
	api.On("CreateCategory", ctx, in).Return(nil, apiErr).Once()

	got, err := s.Create(ctx, in)
	assert.Nil(t, got)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "Category name already exists", rejected.Message)
	assert.Equal(t, "categories/create", rejected.Op)
	assert.ErrorIs(t, err, salonapi.ErrRejected)

	st := s.Snapshot()
	assert.Equal(t, existing, st.Items)
	assert.Equal(t, "Category name already exists", st.Error)
	assert.Equal(t, StatusFailed, st.Status["create"])
	assert.Empty(t, st.SuccessMessage)
	assert.False(t, st.Loading)
}

func TestCategorySlice_Create_FallbackMessage(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewCategorySlice(api, nopLog)

	in := salonapi.CategoryInput{Name: "Hair"}
	api.On("CreateCategory", ctx, in).Return(nil, salonapi.ErrTransport).Once()

	_, err := s.Create(ctx, in)
	require.Error(t, err)
	assert.Equal(t, "Failed to create category", err.Error())
	assert.Equal(t, "Failed to create category", s.Snapshot().Error)
}

func TestCategorySlice_Create_ValidationSkipsCall(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewCategorySlice(api, nopLog)

	_, err := s.Create(ctx, salonapi.CategoryInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "name is required", err.Error())

	st := s.Snapshot()
	assert.Equal(t, StatusFailed, st.Status["create"])
	assert.Equal(t, "name is required", st.Error)
	api.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCategorySlice_UpdateAndStatus(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewCategorySlice(api, nopLog)

	api.On("ListCategories", ctx).Return(ok([]domain.Category{
		{ID: 1, Name: "Hair", IsActive: true},
		{ID: 2, Name: "Nails", IsActive: true},
	}, ""), nil).Once()
	_, err := s.FetchAll(ctx)
	require.NoError(t, err)

	in := salonapi.CategoryInput{Name: "Hair & Beauty", IsActive: true}
	api.On("UpdateCategory", ctx, int64(1), in).
		Return(ok(domain.Category{ID: 1, Name: "Hair & Beauty", IsActive: true}, ""), nil).Once()
	_, err = s.Update(ctx, 1, in)
	require.NoError(t, err)

	api.On("SetCategoryStatus", ctx, int64(2), false).
		Return(ok(domain.Category{ID: 2, Name: "Nails", IsActive: false}, ""), nil).Once()
	_, err = s.SetStatus(ctx, 2, false)
	require.NoError(t, err)

	st := s.Snapshot()
	require.Len(t, st.Items, 2)
	assert.Equal(t, "Hair & Beauty", st.Items[0].Name)
	assert.False(t, st.Items[1].IsActive)
	assert.Equal(t, "Category status updated", st.SuccessMessage)
}

func TestSlotSlice_FetchAvailable(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewSlotSlice(api, nopLog)

	slots := []domain.TimeSlot{
		{ID: 10, ServiceID: 3, Date: "2026-11-02", StartTime: "10:00", EndTime: "11:00", Status: domain.SlotAvailable},
		{ID: 11, ServiceID: 3, Date: "2026-11-02", StartTime: "11:00", EndTime: "12:00", Status: domain.SlotBooked},
	}
	api.On("ListAvailableSlots", ctx, int64(3), "2026-11-02").Return(ok(slots, ""), nil).Once()

	got, err := s.FetchAvailable(ctx, 3, "2026-11-02")
	require.NoError(t, err)
	assert.Equal(t, slots, got)

	view := s.View()
	assert.Equal(t, SlotQuery{ServiceID: 3, Date: "2026-11-02"}, view.Query)
	assert.Equal(t, StatusSucceeded, view.Status["fetch"])

	slot, found := s.FindByID(11)
	assert.True(t, found)
	assert.False(t, slot.IsAvailable())
}

func TestSlotSlice_FetchAvailable_FailureClearsItems(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewSlotSlice(api, nopLog)

	api.On("ListAvailableSlots", ctx, int64(3), "2026-11-02").
		Return(ok([]domain.TimeSlot{{ID: 10, Status: domain.SlotAvailable}}, ""), nil).Once()
	_, err := s.FetchAvailable(ctx, 3, "2026-11-02")
	require.NoError(t, err)

	api.On("ListAvailableSlots", ctx, int64(3), "2026-11-03").
		Return(nil, &salonapi.APIError{StatusCode: http.StatusInternalServerError}).Once()
	_, err = s.FetchAvailable(ctx, 3, "2026-11-03")
	require.Error(t, err)

	st := s.Snapshot()
	assert.NotNil(t, st.Items)
	assert.Empty(t, st.Items)
	assert.Equal(t, StatusFailed, st.Status["fetch"])
	assert.Equal(t, "Failed to fetch time slots", st.Error)
}

func TestBookingSlice_Create_ReturnsServerMessage(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewBookingSlice(api, nopLog)

	draft := domain.BookingDraft{ServiceID: 3, SlotID: 10, Date: "2026-11-02", Email: "a@b.co", PaymentMethod: "card", Amount: 50}
	booking := domain.Booking{ID: 7, ServiceID: 3, SlotID: 10, Status: domain.StatusPending}
	api.On("CreateBooking", ctx, draft).Return(ok(booking, "Booking created. Check your email for the PIN"), nil).Once()

	resp, err := s.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "Booking created. Check your email for the PIN", resp.Message)

	st := s.Snapshot()
	require.NotNil(t, st.Current)
	assert.Equal(t, int64(7), st.Current.ID)
	assert.Len(t, st.Items, 1)
	api.AssertNumberOfCalls(t, "CreateBooking", 1)
}

func TestBookingSlice_ConfirmAndCancel(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewBookingSlice(api, nopLog)

	api.On("ListBookings", ctx, domain.BookingsFilter{}).Return(ok([]domain.Booking{
		{ID: 1, Status: domain.StatusPending},
		{ID: 2, Status: domain.StatusPending},
	}, ""), nil).Once()
	_, err := s.FetchAll(ctx, domain.BookingsFilter{})
	require.NoError(t, err)

	api.On("ConfirmBooking", ctx, int64(1), salonapi.ConfirmBookingRequest{PIN: "4821"}).
		Return(ok(domain.Booking{ID: 1, Status: domain.StatusConfirmed}, ""), nil).Once()
	_, err = s.Confirm(ctx, 1, "4821")
	require.NoError(t, err)

	api.On("CancelBooking", ctx, int64(2), salonapi.CancelBookingRequest{Reason: "client request"}).
		Return(nil, &salonapi.APIError{StatusCode: http.StatusConflict, Message: "Booking already completed"}).Once()
	_, err = s.Cancel(ctx, 2, "client request")
	require.Error(t, err)
	assert.ErrorIs(t, err, salonapi.ErrConflict)

	st := s.Snapshot()
	assert.Equal(t, domain.StatusConfirmed, st.Items[0].Status)
	assert.Equal(t, domain.StatusPending, st.Items[1].Status)
	assert.Equal(t, StatusSucceeded, st.Status["confirm"])
	assert.Equal(t, StatusFailed, st.Status["cancel"])
	assert.Equal(t, "Booking already completed", st.Error)
}

func TestBookingSlice_Confirm_EmptyPIN(t *testing.T) {
	api := new(mockAPI)
	s := NewBookingSlice(api, nopLog)

	_, err := s.Confirm(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrValidation)
	api.AssertNotCalled(t, "ConfirmBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationSlice(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewNotificationSlice(api, nopLog)

	api.On("ListNotifications", ctx).Return(ok([]domain.Notification{
		{ID: 1, Title: "New booking"},
		{ID: 2, Title: "Cancelled"},
		{ID: 3, Title: "Reminder", IsRead: true},
	}, ""), nil).Once()
	_, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.UnreadCount())

	api.On("MarkNotificationRead", ctx, int64(1)).Return(ok(domain.Notification{}, ""), nil).Once()
	_, err = s.MarkRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.UnreadCount())

	api.On("MarkAllNotificationsRead", ctx).Return(ok(struct{}{}, ""), nil).Once()
	require.NoError(t, s.MarkAllRead(ctx))
	assert.Equal(t, 0, s.UnreadCount())
	assert.Equal(t, "All notifications marked as read", s.Snapshot().SuccessMessage)
}

func TestAdminSlice(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewAdminSlice(api, nopLog)

	_, err := s.CreateAccount(ctx, salonapi.CreateAccountRequest{
		Name: "Ann", Email: "not-an-email", Password: "secret123", Role: domain.RoleReceptionist,
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "email must be a valid email", err.Error())

	req := salonapi.CreateAccountRequest{Name: "Ann", Email: "ann@salon.io", Password: "secret123", Role: domain.RoleReceptionist}
	account := domain.AdminAccount{ID: 4, Name: "Ann", Email: "ann@salon.io", Role: domain.RoleReceptionist, IsActive: true}
	api.On("CreateAdmin", ctx, req).Return(ok(account, ""), nil).Once()
	_, err = s.CreateAccount(ctx, req)
	require.NoError(t, err)

	deactivated := account
	deactivated.IsActive = false
	api.On("SetAdminStatus", ctx, int64(4), false).Return(ok(deactivated, ""), nil).Once()
	_, err = s.SetAccountStatus(ctx, 4, false)
	require.NoError(t, err)

	st := s.Snapshot()
	require.Len(t, st.Items, 1)
	assert.False(t, st.Items[0].IsActive)
}

func TestRoomAndClientSlices(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	rooms := NewRoomSlice(api, nopLog)
	clients := NewClientSlice(api, nopLog)

	_, err := rooms.Create(ctx, salonapi.RoomInput{Name: "Room A", Capacity: 0})
	assert.ErrorIs(t, err, ErrValidation)

	in := salonapi.RoomInput{Name: "Room A", Capacity: 2, IsActive: true}
	api.On("CreateRoom", ctx, in).Return(ok(domain.Room{ID: 1, Name: "Room A", Capacity: 2, IsActive: true}, ""), nil).Once()
	_, err = rooms.Create(ctx, in)
	require.NoError(t, err)
	assert.Len(t, rooms.Snapshot().Items, 1)

	api.On("ListClients", ctx).Return(ok([]domain.Client(nil), ""), nil).Once()
	_, err = clients.FetchAll(ctx)
	require.NoError(t, err)
	st := clients.Snapshot()
	assert.NotNil(t, st.Items)
	assert.Empty(t, st.Items)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestAuthSlice_Login(t *testing.T) {
	ctx := context.Background()
	creds := salonapi.LoginRequest{Email: "admin@salon.io", Password: "secret"}

	tests := []struct {
		name     string
		result   salonapi.LoginResult
		wantRole domain.Role
	}{
		{
			name: "role from user payload",
			result: salonapi.LoginResult{
				Token: "opaque",
				User:  &domain.User{ID: 1, Email: "admin@salon.io", Role: domain.RoleAdmin},
			},
			wantRole: domain.RoleAdmin,
		},
		{
			name:     "role from token claim",
			result:   salonapi.LoginResult{Token: signedToken(t, jwt.MapClaims{"role": "receptionist"})},
			wantRole: domain.RoleReceptionist,
		},
		{
			name:     "defaults to client",
			result:   salonapi.LoginResult{Token: "opaque"},
			wantRole: domain.RoleClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mockAPI)
			s := NewAuthSlice(api, nopLog)
			api.On("Login", ctx, creds).Return(ok(tt.result, ""), nil).Once()

			user, err := s.Login(ctx, creds)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.Equal(t, tt.result.Token, s.Token())
			assert.Equal(t, tt.wantRole, s.Role())

			view := s.View()
			assert.True(t, view.IsAuthenticated)
			assert.Equal(t, tt.wantRole, view.Role)
			assert.Equal(t, "Logged in successfully", view.SuccessMessage)
		})
	}
}

func TestAuthSlice_LoginFailure(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewAuthSlice(api, nopLog)

	creds := salonapi.LoginRequest{Email: "admin@salon.io", Password: "wrong"}
	api.On("Login", ctx, creds).
		Return(nil, &salonapi.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}).Once()

	_, err := s.Login(ctx, creds)
	require.Error(t, err)
	assert.ErrorIs(t, err, salonapi.ErrUnauthorized)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "Invalid credentials", s.Snapshot().Error)
}

func TestAuthSlice_LogoutClearsStateOnFailure(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewAuthSlice(api, nopLog)

	creds := salonapi.LoginRequest{Email: "admin@salon.io", Password: "secret"}
	api.On("Login", ctx, creds).Return(ok(salonapi.LoginResult{
		Token: "t", User: &domain.User{ID: 1, Role: domain.RoleAdmin},
	}, ""), nil).Once()
	_, err := s.Login(ctx, creds)
	require.NoError(t, err)

	api.On("Logout", ctx).Return(nil, errors.New("connection reset")).Once()
	err = s.Logout(ctx)
	require.Error(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Role())
	assert.Nil(t, s.Snapshot().Current)
}

func TestAuthSlice_InvalidateAndFetchCurrentUser(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	s := NewAuthSlice(api, nopLog)

	_, err := s.FetchCurrentUser(ctx)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	api.AssertNotCalled(t, "Me", mock.Anything)

	creds := salonapi.LoginRequest{Email: "rec@salon.io", Password: "secret"}
	api.On("Login", ctx, creds).Return(ok(salonapi.LoginResult{Token: "t"}, ""), nil).Once()
	_, err = s.Login(ctx, creds)
	require.NoError(t, err)

	api.On("Me", ctx).Return(ok(domain.User{ID: 2, Email: "rec@salon.io", Role: domain.RoleReceptionist}, ""), nil).Once()
	user, err := s.FetchCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleReceptionist, user.Role)
	assert.Equal(t, domain.RoleReceptionist, s.Role())

	s.Invalidate()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Snapshot().Current)
}

func TestStore_New(t *testing.T) {
	st := New(new(mockAPI), nopLog)

	assert.NotNil(t, st.Auth)
	assert.NotNil(t, st.Admins)
	assert.NotNil(t, st.Categories)
	assert.NotNil(t, st.Services)
	assert.NotNil(t, st.Slots)
	assert.NotNil(t, st.Bookings)
	assert.NotNil(t, st.Rooms)
	assert.NotNil(t, st.Notifications)
	assert.NotNil(t, st.Clients)

	var creds salonapi.Credentials = st.Auth
	assert.Empty(t, creds.Token())
}
