package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
)

// SlotSource слайс временных слотов
type SlotSource interface {
	FetchAvailable(ctx context.Context, serviceID int64, date string) ([]domain.TimeSlot, error)
	FindByID(id int64) (domain.TimeSlot, bool)
}

// BookingCreator слайс бронирований
type BookingCreator interface {
	Create(ctx context.Context, draft domain.BookingDraft) (*salonapi.Response[domain.Booking], error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Flow связывает сессию мастера со слайсами слотов и бронирований
// и выполняет эффекты переходов
type Flow struct {
	mu       sync.Mutex
	sess     *Session
	slots    SlotSource
	bookings BookingCreator
	log      Logger
}

func NewFlow(sess *Session, slots SlotSource, bookings BookingCreator, log Logger) *Flow {
	return &Flow{sess: sess, slots: slots, bookings: bookings, log: log}
}

// ServiceID услуга, для которой открыт мастер
func (f *Flow) ServiceID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess.ServiceID
}

// Submitted бронирование создано, мастер можно удалять
func (f *Flow) Submitted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess.Submitted
}

func (f *Flow) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return newView(f.sess)
}

// Next переход вперед; на шаге времени загружает слоты
func (f *Flow) Next(ctx context.Context) (Effect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	effect, err := f.sess.Next()
	if err != nil {
		return Effect{}, err
	}
	f.perform(ctx, effect)
	return effect, nil
}

// Back переход назад; с первого шага возвращает эффект навигации
func (f *Flow) Back(ctx context.Context) Effect {
	f.mu.Lock()
	defer f.mu.Unlock()

	effect := f.sess.Back()
	f.perform(ctx, effect)
	return effect
}

func (f *Flow) perform(ctx context.Context, effect Effect) {
	if effect.Kind != EffectFetchSlots {
		return
	}
	if _, err := f.slots.FetchAvailable(ctx, effect.ServiceID, effect.Date); err != nil {
		f.log.Warn("wizard: failed to fetch slots for service %d on %s: %v", effect.ServiceID, effect.Date, err)
		f.sess.Alert = &Alert{Kind: OutcomeFailure, Message: rejectionMessage(err, "Failed to fetch time slots")}
	}
}

func (f *Flow) SetDate(date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess.SetDate(date)
}

// SelectSlot выбирает слот по id среди загруженных слайсом
func (f *Flow) SelectSlot(slotID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, ok := f.slots.FindByID(slotID)
	if !ok || slot.ServiceID != 0 && slot.ServiceID != f.sess.ServiceID {
		return ErrSlotUnavailable
	}
	return f.sess.SelectSlot(slot)
}

func (f *Flow) SetEmail(email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess.SetEmail(strings.TrimSpace(email))
}

func (f *Flow) SetConfirmed(confirmed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess.SetConfirmed(confirmed)
}

func (f *Flow) SetPaymentMethod(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess.SetPaymentMethod(method)
}

func (f *Flow) DismissAlert() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sess.DismissAlert()
}

// Submit отправляет бронирование ровно одним запросом без повторов.
// Блокировка держится до ответа, поэтому двойной клик не создаст второй запрос
// поверх незавершенного.
func (f *Flow) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	draft, err := f.sess.Draft()
	if err != nil {
		return Outcome{}, err
	}

	resp, err := f.bookings.Create(ctx, draft)
	out := Classify(resp, err)
	f.sess.Apply(out)

	switch out.Kind {
	case OutcomeSuccess:
		f.log.Info("wizard: booking created for service %d slot %d", draft.ServiceID, draft.SlotID)
	case OutcomeConflict, OutcomeSlotFull:
		f.log.Warn("wizard: slot %d rejected (%s): %s", draft.SlotID, out.Kind, out.Message)
	default:
		f.log.Error("wizard: failed to create booking: %v", err)
	}
	return out, nil
}

// rejectionMessage текст отклонения слайса либо fallback
func rejectionMessage(err error, fallback string) string {
	var rejected *store.RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message
	}
	return salonapi.ErrorMessage(err, fallback)
}
