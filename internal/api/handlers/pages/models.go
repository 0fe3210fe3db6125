package pages

import (
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
)

// HomePage главная страница: категории и услуги
type HomePage struct {
	Categories store.State[domain.Category] `json:"categories"`
	Services   store.State[domain.Service]  `json:"services"`
}

// ServicesPage список услуг с фильтром по категории
type ServicesPage struct {
	CategoryID int64                        `json:"categoryId,omitempty"`
	Categories store.State[domain.Category] `json:"categories"`
	Services   store.State[domain.Service]  `json:"services"`
}

// ServicePage карточка услуги
type ServicePage struct {
	Service store.State[domain.Service] `json:"service"`
}

// activeOnly скрывает выключенные категории и услуги на публичных страницах
func activeOnly[T any](st store.State[T], active func(T) bool) store.State[T] {
	items := make([]T, 0, len(st.Items))
	for _, item := range st.Items {
		if active(item) {
			items = append(items, item)
		}
	}
	st.Items = items
	return st
}

func categoryActive(c domain.Category) bool { return c.IsActive }
func serviceActive(s domain.Service) bool   { return s.IsActive }
