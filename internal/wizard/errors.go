package wizard

import "errors"

var (
	// ErrWrongStep поле редактируется не на своем шаге
	ErrWrongStep = errors.New("wizard: field is not editable at the current step")

	// ErrSlotRequired переход 2 -> 3 без выбранного слота
	ErrSlotRequired = errors.New("wizard: please select a time slot")

	// ErrInvalidEmail переход 3 -> 4 с некорректным email
	ErrInvalidEmail = errors.New("wizard: please enter a valid email address")

	// ErrNotConfirmed переход 4 -> 5 без подтверждения деталей
	ErrNotConfirmed = errors.New("wizard: please confirm the booking details")

	// ErrInvalidDate дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("wizard: invalid date")

	// ErrPastDate дата раньше сегодняшней
	ErrPastDate = errors.New("wizard: date is in the past")

	// ErrSlotUnavailable слот не найден среди загруженных или занят
	ErrSlotUnavailable = errors.New("wizard: time slot is not available")

	// ErrPaymentRequired отправка без способа оплаты
	ErrPaymentRequired = errors.New("wizard: please select a payment method")

	// ErrUnknownPayment способ оплаты не из списка
	ErrUnknownPayment = errors.New("wizard: unknown payment method")

	// ErrNotAtPayment отправка не с последнего шага
	ErrNotAtPayment = errors.New("wizard: booking can be submitted only at the payment step")

	// ErrSubmitted бронирование уже создано, мастер закрыт
	ErrSubmitted = errors.New("wizard: booking already submitted")
)
