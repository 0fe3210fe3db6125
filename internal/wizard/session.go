package wizard

import (
	"regexp"
	"slices"
	"time"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// Step шаг мастера бронирования
type Step int

const (
	StepDate Step = iota + 1
	StepTime
	StepEmail
	StepConfirm
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepDate:
		return "date"
	case StepTime:
		return "time"
	case StepEmail:
		return "email"
	case StepConfirm:
		return "confirm"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// ServicesPath куда уходит Back с первого шага
const ServicesPath = "/services"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail проверка email перед шагом подтверждения
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// EffectKind побочное действие перехода
type EffectKind string

const (
	EffectNone       EffectKind = ""
	EffectFetchSlots EffectKind = "fetchSlots"
	EffectNavigate   EffectKind = "navigate"
)

// Effect что нужно сделать после перехода
type Effect struct {
	Kind      EffectKind
	ServiceID int64
	Date      string
	Path      string
}

// Session состояние одного прохождения мастера.
// Session не потокобезопасна, конкурентный доступ сериализует Flow.
type Session struct {
	ServiceID     int64
	ServiceName   string
	Amount        float64
	Step          Step
	Date          string
	Slot          *domain.TimeSlot
	Email         string
	Confirmed     bool
	PaymentMethod string
	Alert         *Alert
	Submitted     bool

	clock func() time.Time
}

// New создает сессию мастера для услуги. Дата по умолчанию сегодняшняя,
// сумма равна цене услуги на момент открытия мастера.
func New(service domain.Service, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Amount:      service.Price,
		Step:        StepDate,
		Date:        clock().Format(domain.DateFormat),
		clock:       clock,
	}
}

func (s *Session) today() string {
	return s.clock().Format(domain.DateFormat)
}

// CanAdvance проверяет условие перехода с текущего шага
func (s *Session) CanAdvance() error {
	if s.Submitted {
		return ErrSubmitted
	}
	switch s.Step {
	case StepTime:
		if s.Slot == nil {
			return ErrSlotRequired
		}
	case StepEmail:
		if !ValidEmail(s.Email) {
			return ErrInvalidEmail
		}
	case StepConfirm:
		if !s.Confirmed {
			return ErrNotConfirmed
		}
	}
	return nil
}

// Next переходит на следующий шаг, на последнем шаге остается на месте.
// Вход на шаг выбора времени требует загрузки слотов по (ServiceID, Date).
func (s *Session) Next() (Effect, error) {
	if err := s.CanAdvance(); err != nil {
		return Effect{}, err
	}
	if s.Step >= StepPayment {
		s.Step = StepPayment
		return Effect{}, nil
	}

	s.Step++
	return s.enterEffect(), nil
}

// Back возвращает на предыдущий шаг без очистки данных.
// С первого шага мастер закрывается переходом к списку услуг.
func (s *Session) Back() Effect {
	if s.Step <= StepDate {
		return Effect{Kind: EffectNavigate, Path: ServicesPath}
	}
	s.Step--
	return s.enterEffect()
}

func (s *Session) enterEffect() Effect {
	if s.Step == StepTime && s.ServiceID > 0 && s.Date != "" {
		return Effect{Kind: EffectFetchSlots, ServiceID: s.ServiceID, Date: s.Date}
	}
	return Effect{}
}

func (s *Session) editable(step Step) error {
	if s.Submitted {
		return ErrSubmitted
	}
	if s.Step != step {
		return ErrWrongStep
	}
	return nil
}

// SetDate выбор даты; выбранный ранее слот не сбрасывается,
// слоты перезагрузятся при следующем входе на шаг времени
func (s *Session) SetDate(date string) error {
	if err := s.editable(StepDate); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return ErrInvalidDate
	}
	if date < s.today() {
		return ErrPastDate
	}
	s.Date = date
	return nil
}

// SelectSlot выбор слота из загруженных для текущей даты
func (s *Session) SelectSlot(slot domain.TimeSlot) error {
	if err := s.editable(StepTime); err != nil {
		return err
	}
	if !slot.IsAvailable() {
		return ErrSlotUnavailable
	}
	s.Slot = &slot
	return nil
}

func (s *Session) SetEmail(email string) error {
	if err := s.editable(StepEmail); err != nil {
		return err
	}
	s.Email = email
	return nil
}

func (s *Session) SetConfirmed(confirmed bool) error {
	if err := s.editable(StepConfirm); err != nil {
		return err
	}
	s.Confirmed = confirmed
	return nil
}

func (s *Session) SetPaymentMethod(method string) error {
	if err := s.editable(StepPayment); err != nil {
		return err
	}
	if method != "" && !slices.Contains(domain.PaymentMethods, method) {
		return ErrUnknownPayment
	}
	s.PaymentMethod = method
	return nil
}

// Draft собирает черновик бронирования на шаге оплаты
func (s *Session) Draft() (domain.BookingDraft, error) {
	if s.Submitted {
		return domain.BookingDraft{}, ErrSubmitted
	}
	if s.Step != StepPayment {
		return domain.BookingDraft{}, ErrNotAtPayment
	}
	if s.PaymentMethod == "" {
		return domain.BookingDraft{}, ErrPaymentRequired
	}
	if s.Slot == nil {
		return domain.BookingDraft{}, ErrSlotRequired
	}

	return domain.BookingDraft{
		ServiceID:     s.ServiceID,
		SlotID:        s.Slot.ID,
		Date:          s.Date,
		Email:         s.Email,
		PaymentMethod: s.PaymentMethod,
		Amount:        s.Amount,
	}, nil
}

// DismissAlert закрывает модальное окно, шаг не меняется
func (s *Session) DismissAlert() {
	s.Alert = nil
}
