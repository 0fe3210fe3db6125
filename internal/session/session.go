package session

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
	"github.com/m04kA/SMC-SalonWeb/internal/wizard"
)

// Session браузерная сессия: свой клиент API с cookie jar,
// центральное хранилище и не более одного мастера бронирования
type Session struct {
	ID     string
	Client *salonapi.Client
	Store  *store.Store

	mu       sync.Mutex
	wizard   *wizard.Flow
	lastSeen time.Time
}

// Transient true для сессии без регистрации в реестре
func (s *Session) Transient() bool {
	return s.ID == ""
}

// Wizard активный мастер или nil
func (s *Session) Wizard() *wizard.Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard
}

// MountWizard открывает мастер, предыдущий отбрасывается
func (s *Session) MountWizard(flow *wizard.Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizard = flow
}

// DiscardWizard закрывает мастер (уход со страницы или успешная отправка)
func (s *Session) DiscardWizard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizard = nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

func (s *Session) hasWizard() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard != nil
}
