package store

// Store центральное хранилище состояния одной браузерной сессии
type Store struct {
	Auth          *AuthSlice
	Admins        *AdminSlice
	Categories    *CategorySlice
	Services      *ServiceSlice
	Slots         *SlotSlice
	Bookings      *BookingSlice
	Rooms         *RoomSlice
	Notifications *NotificationSlice
	Clients       *ClientSlice
}

func New(api API, log Logger) *Store {
	return &Store{
		Auth:          NewAuthSlice(api, log),
		Admins:        NewAdminSlice(api, log),
		Categories:    NewCategorySlice(api, log),
		Services:      NewServiceSlice(api, log),
		Slots:         NewSlotSlice(api, log),
		Bookings:      NewBookingSlice(api, log),
		Rooms:         NewRoomSlice(api, log),
		Notifications: NewNotificationSlice(api, log),
		Clients:       NewClientSlice(api, log),
	}
}
