package booking_wizard

import (
	"github.com/m04kA/SMC-SalonWeb/internal/store"
	"github.com/m04kA/SMC-SalonWeb/internal/wizard"
)

// Response состояние мастера вместе со слотами выбранной даты
type Response struct {
	Wizard   *wizard.View    `json:"wizard,omitempty"`
	Slots    store.SlotState `json:"slots"`
	Outcome  *wizard.Outcome `json:"outcome,omitempty"`
	Error    string          `json:"error,omitempty"`
	Redirect string          `json:"redirect,omitempty"`
}

type DateRequest struct {
	Date string `json:"date"`
}

type SlotRequest struct {
	SlotID int64 `json:"slotId"`
}

type EmailRequest struct {
	Email string `json:"email"`
}

type ConfirmationRequest struct {
	Confirmed bool `json:"confirmed"`
}

type PaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}
