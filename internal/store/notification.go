package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

func notificationID(n domain.Notification) int64 { return n.ID }

// NotificationSlice уведомления сотрудников
type NotificationSlice struct {
	*Slice[domain.Notification]
	api NotificationAPI
}

func NewNotificationSlice(api NotificationAPI, log Logger) *NotificationSlice {
	return &NotificationSlice{Slice: newSlice[domain.Notification]("notifications", log), api: api}
}

func (s *NotificationSlice) FetchAll(ctx context.Context) ([]domain.Notification, error) {
	resp, err := thunk[domain.Notification, []domain.Notification]{
		op:       "fetch",
		fallback: "Failed to fetch notifications",
		call: func(ctx context.Context) (*salonapi.Response[[]domain.Notification], error) {
			return s.api.ListNotifications(ctx)
		},
		reduce: func(st *State[domain.Notification], data []domain.Notification) {
			st.Items = nonNil(data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *NotificationSlice) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	resp, err := thunk[domain.Notification, domain.Notification]{
		op:       "markRead",
		fallback: "Failed to update notification",
		call: func(ctx context.Context) (*salonapi.Response[domain.Notification], error) {
			return s.api.MarkNotificationRead(ctx, id)
		},
		reduce: func(st *State[domain.Notification], data domain.Notification) {
			// backend может вернуть пустое тело, тогда отмечаем по известному id
			if data.ID == 0 {
				for i := range st.Items {
					if st.Items[i].ID == id {
						st.Items[i].IsRead = true
					}
				}
				return
			}
			st.Items = replaceByID(st.Items, data, notificationID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *NotificationSlice) MarkAllRead(ctx context.Context) error {
	_, err := thunk[domain.Notification, struct{}]{
		op:       "markAllRead",
		fallback: "Failed to update notifications",
		success:  "All notifications marked as read",
		call: func(ctx context.Context) (*salonapi.Response[struct{}], error) {
			return s.api.MarkAllNotificationsRead(ctx)
		},
		reduce: func(st *State[domain.Notification], _ struct{}) {
			for i := range st.Items {
				st.Items[i].IsRead = true
			}
		},
	}.run(ctx, s.Slice)
	return err
}

// UnreadCount количество непрочитанных среди загруженных
func (s *NotificationSlice) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, item := range s.state.Items {
		if !item.IsRead {
			n++
		}
	}
	return n
}
