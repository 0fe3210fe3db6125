package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Role роль пользователя платформы
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "receptionist"
	RoleClient       Role = "client"
)

// IsValid returns true for roles known to the client
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReceptionist, RoleClient:
		return true
	}
	return false
}

// Payment methods offered on the last wizard step
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentMobile = "mobile_money"
)

// PaymentMethods список способов оплаты для формы
var PaymentMethods = []string{PaymentCash, PaymentCard, PaymentMobile}
