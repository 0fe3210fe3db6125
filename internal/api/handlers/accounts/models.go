package accounts

import (
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

// CreateAccountRequest форма новой учетной записи сотрудника
type CreateAccountRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

func (r CreateAccountRequest) ToAPIRequest() salonapi.CreateAccountRequest {
	return salonapi.CreateAccountRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

type StatusRequest struct {
	IsActive *bool `json:"isActive"`
}
