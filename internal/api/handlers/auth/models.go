package auth

import (
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
)

// LoginRequest тело POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) ToAPIRequest() salonapi.LoginRequest {
	return salonapi.LoginRequest{Email: r.Email, Password: r.Password}
}

// SessionResponse состояние аутентификации и страница по роли
type SessionResponse struct {
	Auth     store.AuthView `json:"auth"`
	Redirect string         `json:"redirect,omitempty"`
}

// homeFor стартовая страница по роли после входа
func homeFor(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "/admin"
	case domain.RoleReceptionist:
		return "/reception"
	default:
		return "/"
	}
}
