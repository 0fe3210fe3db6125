package notifications

import (
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
)

// NotificationsView уведомления и число непрочитанных для бейджа
type NotificationsView struct {
	store.State[domain.Notification]
	UnreadCount int `json:"unreadCount"`
}
