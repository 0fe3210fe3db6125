package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

func slotID(s domain.TimeSlot) int64 { return s.ID }

// SlotQuery ключ последней загрузки слотов
type SlotQuery struct {
	ServiceID int64  `json:"serviceId"`
	Date      string `json:"date"`
}

// SlotState состояние слайса слотов вместе с ключом загрузки
type SlotState struct {
	State[domain.TimeSlot]
	Query SlotQuery `json:"query"`
}

// SlotSlice временные слоты. Между датами не кэшируются:
// каждая загрузка заменяет коллекцию целиком.
type SlotSlice struct {
	*Slice[domain.TimeSlot]
	api   SlotAPI
	query SlotQuery
}

func NewSlotSlice(api SlotAPI, log Logger) *SlotSlice {
	return &SlotSlice{Slice: newSlice[domain.TimeSlot]("slots", log), api: api}
}

// View снимок состояния с ключом загрузки
func (s *SlotSlice) View() SlotState {
	st := s.Snapshot()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SlotState{State: st, Query: s.query}
}

// FetchAvailable загружает слоты услуги на дату.
// При ошибке коллекция очищается, status.fetch = failed.
func (s *SlotSlice) FetchAvailable(ctx context.Context, serviceID int64, date string) ([]domain.TimeSlot, error) {
	s.mu.Lock()
	s.query = SlotQuery{ServiceID: serviceID, Date: date}
	s.mu.Unlock()

	resp, err := thunk[domain.TimeSlot, []domain.TimeSlot]{
		op:       "fetch",
		fallback: "Failed to fetch time slots",
		call: func(ctx context.Context) (*salonapi.Response[[]domain.TimeSlot], error) {
			return s.api.ListAvailableSlots(ctx, serviceID, date)
		},
		reduce: func(st *State[domain.TimeSlot], data []domain.TimeSlot) {
			st.Items = nonNil(data)
		},
		onReject: func(st *State[domain.TimeSlot]) {
			st.Items = []domain.TimeSlot{}
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Create добавляет слот (дашборд администратора)
func (s *SlotSlice) Create(ctx context.Context, in salonapi.SlotInput) (*domain.TimeSlot, error) {
	if err := validatePayload(in); err != nil {
		return nil, s.reject("create", err)
	}

	resp, err := thunk[domain.TimeSlot, domain.TimeSlot]{
		op:       "create",
		fallback: "Failed to create time slot",
		success:  "Time slot created successfully",
		call: func(ctx context.Context) (*salonapi.Response[domain.TimeSlot], error) {
			return s.api.CreateSlot(ctx, in)
		},
		reduce: func(st *State[domain.TimeSlot], data domain.TimeSlot) {
			st.Items = append(st.Items, data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update изменяет слот
func (s *SlotSlice) Update(ctx context.Context, id int64, in salonapi.SlotInput) (*domain.TimeSlot, error) {
	if err := validatePayload(in); err != nil {
		return nil, s.reject("update", err)
	}

	resp, err := thunk[domain.TimeSlot, domain.TimeSlot]{
		op:       "update",
		fallback: "Failed to update time slot",
		success:  "Time slot updated successfully",
		call: func(ctx context.Context) (*salonapi.Response[domain.TimeSlot], error) {
			return s.api.UpdateSlot(ctx, id, in)
		},
		reduce: func(st *State[domain.TimeSlot], data domain.TimeSlot) {
			st.Items = replaceByID(st.Items, data, slotID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// FindByID ищет слот среди загруженных
func (s *SlotSlice) FindByID(id int64) (domain.TimeSlot, bool) {
	return s.Find(func(slot domain.TimeSlot) bool { return slot.ID == id })
}
