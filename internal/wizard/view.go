package wizard

import "github.com/m04kA/SMC-SalonWeb/internal/domain"

// View модель мастера для слоя представления
type View struct {
	ServiceID      int64            `json:"serviceId"`
	ServiceName    string           `json:"serviceName,omitempty"`
	Step           Step             `json:"step"`
	StepName       string           `json:"stepName"`
	Date           string           `json:"date"`
	Slot           *domain.TimeSlot `json:"slot,omitempty"`
	Email          string           `json:"email"`
	Confirmed      bool             `json:"confirmed"`
	PaymentMethod  string           `json:"paymentMethod,omitempty"`
	PaymentMethods []string         `json:"paymentMethods"`
	Amount         float64          `json:"amount"`
	CanAdvance     bool             `json:"canAdvance"`
	CanGoBack      bool             `json:"canGoBack"`
	Alert          *Alert           `json:"alert,omitempty"`
	Submitted      bool             `json:"submitted"`
}

func newView(s *Session) View {
	v := View{
		ServiceID:      s.ServiceID,
		ServiceName:    s.ServiceName,
		Step:           s.Step,
		StepName:       s.Step.String(),
		Date:           s.Date,
		Email:          s.Email,
		Confirmed:      s.Confirmed,
		PaymentMethod:  s.PaymentMethod,
		PaymentMethods: domain.PaymentMethods,
		Amount:         s.Amount,
		CanAdvance:     s.Step < StepPayment && s.CanAdvance() == nil,
		CanGoBack:      !s.Submitted,
		Submitted:      s.Submitted,
	}
	if s.Slot != nil {
		slot := *s.Slot
		v.Slot = &slot
	}
	if s.Alert != nil {
		alert := *s.Alert
		v.Alert = &alert
	}
	return v
}
