package domain

import "time"

// User текущий пользователь сессии
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// AdminAccount учетная запись сотрудника (администратор или ресепшн)
type AdminAccount struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Client клиент салона, агрегированный backend'ом по бронированиям
type Client struct {
	Email         string     `json:"email"`
	Name          string     `json:"name,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	BookingsCount int        `json:"bookingsCount"`
	LastBookingAt *time.Time `json:"lastBookingAt,omitempty"`
}

// Notification уведомление для сотрудников
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
