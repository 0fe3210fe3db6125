package salonapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// Login POST /api/auth/login
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Response[LoginResult], error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	return call[LoginResult](ctx, c, http.MethodPost, "/api/auth/login", "/api/auth/login", nil, body)
}

// Logout POST /api/auth/logout
func (c *Client) Logout(ctx context.Context) (*Response[struct{}], error) {
	return call[struct{}](ctx, c, http.MethodPost, "/api/auth/logout", "/api/auth/logout", nil, nil)
}

// Me GET /api/auth/me
func (c *Client) Me(ctx context.Context) (*Response[domain.User], error) {
	return call[domain.User](ctx, c, http.MethodGet, "/api/auth/me", "/api/auth/me", nil, nil)
}

// ListAdmins GET /api/auth/admins
func (c *Client) ListAdmins(ctx context.Context) (*Response[[]domain.AdminAccount], error) {
	return call[[]domain.AdminAccount](ctx, c, http.MethodGet, "/api/auth/admins", "/api/auth/admins", nil, nil)
}

// CreateAdmin POST /api/auth/admins
func (c *Client) CreateAdmin(ctx context.Context, req CreateAccountRequest) (*Response[domain.AdminAccount], error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}
	return call[domain.AdminAccount](ctx, c, http.MethodPost, "/api/auth/admins", "/api/auth/admins", nil, body)
}

// SetAdminStatus PATCH /api/auth/admins/{id}/status
func (c *Client) SetAdminStatus(ctx context.Context, id int64, active bool) (*Response[domain.AdminAccount], error) {
	body, err := jsonBody(StatusRequest{IsActive: active})
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/auth/admins/%d/status", id)
	return call[domain.AdminAccount](ctx, c, http.MethodPatch, "/api/auth/admins/{id}/status", path, nil, body)
}

// RoleFromToken читает claim role из bearer токена без проверки подписи.
// Подпись проверяет backend; клиенту роль нужна только для выбора доступных страниц.
func RoleFromToken(token string) (domain.Role, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: failed to parse token: %v", ErrInvalidResponse, err)
	}

	role, ok := claims["role"].(string)
	if !ok || !domain.Role(role).IsValid() {
		return "", fmt.Errorf("%w: token has no valid role claim", ErrInvalidResponse)
	}
	return domain.Role(role), nil
}
