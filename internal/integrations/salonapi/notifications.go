package salonapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// ListNotifications GET /api/notifications
func (c *Client) ListNotifications(ctx context.Context) (*Response[[]domain.Notification], error) {
	return call[[]domain.Notification](ctx, c, http.MethodGet, "/api/notifications", "/api/notifications", nil, nil)
}

// MarkNotificationRead POST /api/notifications/{id}/read
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) (*Response[domain.Notification], error) {
	path := fmt.Sprintf("/api/notifications/%d/read", id)
	return call[domain.Notification](ctx, c, http.MethodPost, "/api/notifications/{id}/read", path, nil, nil)
}

// MarkAllNotificationsRead POST /api/notifications/read-all
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (*Response[struct{}], error) {
	return call[struct{}](ctx, c, http.MethodPost, "/api/notifications/read-all", "/api/notifications/read-all", nil, nil)
}
