package store

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

// OpStatus состояние последнего запуска операции слайса
type OpStatus string

const (
	StatusIdle      OpStatus = "idle"
	StatusLoading   OpStatus = "loading"
	StatusSucceeded OpStatus = "succeeded"
	StatusFailed    OpStatus = "failed"
)

// State состояние слайса, которое видит слой представления
type State[T any] struct {
	Items          []T                 `json:"items"`
	Current        *T                  `json:"current,omitempty"`
	Loading        bool                `json:"loading"`
	Error          string              `json:"error,omitempty"`
	SuccessMessage string              `json:"successMessage,omitempty"`
	Status         map[string]OpStatus `json:"status"`
}

// Slice состояние одного ресурса backend'а.
// Мьютекс защищает только запись состояния: HTTP вызовы идут без блокировки,
// поэтому при гонке двух одинаковых операций побеждает та, что завершилась последней.
type Slice[T any] struct {
	name  string
	mu    sync.RWMutex
	state State[T]
	log   Logger
}

func newSlice[T any](name string, log Logger) *Slice[T] {
	return &Slice[T]{
		name: name,
		state: State[T]{
			Items:  []T{},
			Status: map[string]OpStatus{},
		},
		log: log,
	}
}

// Snapshot возвращает копию состояния
func (s *Slice[T]) Snapshot() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := State[T]{
		Items:          make([]T, len(s.state.Items)),
		Loading:        s.state.Loading,
		Error:          s.state.Error,
		SuccessMessage: s.state.SuccessMessage,
		Status:         make(map[string]OpStatus, len(s.state.Status)),
	}
	copy(out.Items, s.state.Items)
	if s.state.Current != nil {
		current := *s.state.Current
		out.Current = &current
	}
	for op, st := range s.state.Status {
		out.Status[op] = st
	}
	return out
}

// Find ищет элемент коллекции по предикату
func (s *Slice[T]) Find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.state.Items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Slice[T]) pending(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = true
	s.state.Error = ""
	s.state.SuccessMessage = ""
	s.state.Status[op] = StatusLoading
}

func (s *Slice[T]) fulfilled(op, message string, reduce func(st *State[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Status[op] = StatusSucceeded
	s.state.SuccessMessage = message
	if reduce != nil {
		reduce(&s.state)
	}
}

func (s *Slice[T]) rejected(op, message string, reduce func(st *State[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	s.state.Status[op] = StatusFailed
	s.state.Error = message
	if reduce != nil {
		reduce(&s.state)
	}
}

// thunk одна асинхронная операция слайса: pending -> вызов API -> fulfilled/rejected
type thunk[T, R any] struct {
	op string
	// fallback текст ошибки, если backend не прислал message
	fallback string
	// success текст успеха, если backend не прислал message; пустой для чтения
	success  string
	call     func(ctx context.Context) (*salonapi.Response[R], error)
	reduce   func(st *State[T], data R)
	onReject func(st *State[T])
}

func (t thunk[T, R]) run(ctx context.Context, s *Slice[T]) (*salonapi.Response[R], error) {
	s.pending(t.op)

	resp, err := t.call(ctx)
	if err != nil {
		msg := salonapi.ErrorMessage(err, t.fallback)
		s.log.Warn("%s/%s rejected: %v", s.name, t.op, err)
		s.rejected(t.op, msg, t.onReject)
		return nil, &RejectedError{Op: s.name + "/" + t.op, Message: msg, Err: err}
	}

	message := resp.Message
	if message == "" {
		message = t.success
	}
	s.fulfilled(t.op, message, func(st *State[T]) {
		if t.reduce != nil {
			t.reduce(st, resp.Data)
		}
	})
	return resp, nil
}

// reject отклоняет операцию без HTTP вызова (локальная валидация)
func (s *Slice[T]) reject(op string, err error) error {
	msg := err.Error()
	var verr *ValidationError
	if errors.As(err, &verr) {
		msg = verr.Message
	}
	s.pending(op)
	s.rejected(op, msg, nil)
	return &RejectedError{Op: s.name + "/" + op, Message: msg, Err: err}
}

// nonNil гарантирует пустой массив вместо null в JSON
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// replaceByID заменяет элемент коллекции с тем же id
func replaceByID[T any](items []T, updated T, id func(T) int64) []T {
	target := id(updated)
	for i := range items {
		if id(items[i]) == target {
			items[i] = updated
			return items
		}
	}
	return items
}
