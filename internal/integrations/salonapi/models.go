package salonapi

import (
	"io"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// LoginRequest учетные данные сотрудника или клиента
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult данные успешного входа
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// CreateAccountRequest создание учетной записи сотрудника
type CreateAccountRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     domain.Role `json:"role" validate:"required,oneof=admin receptionist"`
}

// StatusRequest переключение активности сущности
type StatusRequest struct {
	IsActive bool `json:"isActive"`
}

// Upload файл изображения для multipart запросов
type Upload struct {
	Filename string
	Content  io.Reader
}

// CategoryInput поля формы категории
type CategoryInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=1000"`
	IsActive    bool    `json:"isActive"`
	Image       *Upload `json:"-"`
}

// ServiceInput поля формы услуги
type ServiceInput struct {
	CategoryID      int64   `json:"categoryId" validate:"required,gt=0"`
	Name            string  `json:"name" validate:"required,max=100"`
	Description     string  `json:"description" validate:"max=1000"`
	Price           float64 `json:"price" validate:"gt=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"gt=0"`
	IsActive        bool    `json:"isActive"`
	Image           *Upload `json:"-"`
}

// RoomInput поля формы кабинета
type RoomInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Capacity int    `json:"capacity" validate:"gt=0"`
	IsActive bool   `json:"isActive"`
}

// SlotInput создание или изменение временного слота
type SlotInput struct {
	ServiceID int64             `json:"serviceId" validate:"required,gt=0"`
	Date      string            `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string            `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string            `json:"endTime" validate:"required,datetime=15:04"`
	Status    domain.SlotStatus `json:"status,omitempty" validate:"omitempty,oneof=available booked full"`
}

// ConfirmBookingRequest подтверждение бронирования PIN-кодом
type ConfirmBookingRequest struct {
	PIN string `json:"pin" validate:"required"`
}

// CancelBookingRequest отмена бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}
