package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
)

// Options настройки реестра сессий
type Options struct {
	APIBaseURL string
	APITimeout time.Duration
	TTL        time.Duration
}

// Manager реестр браузерных сессий в памяти процесса.
// Ничего не сохраняется: сессия живет до истечения TTL простоя или до рестарта.
type Manager struct {
	opts    Options
	metrics Metrics
	log     Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(opts Options, metrics Metrics, log Logger) *Manager {
	return &Manager{
		opts:     opts,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get возвращает живую сессию и продлевает ее
func (m *Manager) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}

	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := m.now()
	if sess.expired(now, m.opts.TTL) {
		m.Delete(id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create заводит новую сессию со своим клиентом API и хранилищем
func (m *Manager) Create() *Session {
	sess := m.build(uuid.NewString())

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	m.log.Debug("session: created %s", sess.ID)
	m.report()
	return sess
}

// Transient сессия на один запрос: не регистрируется и не получает cookie.
// Анонимные чтения страниц не занимают место в реестре.
func (m *Manager) Transient() *Session {
	return m.build("")
}

func (m *Manager) build(id string) *Session {
	client := salonapi.NewClient(m.opts.APIBaseURL, m.opts.APITimeout, m.metrics, m.log)
	st := store.New(client, m.log)
	client.SetCredentials(st.Auth)

	return &Session{
		ID:       id,
		Client:   client,
		Store:    st,
		lastSeen: m.now(),
	}
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	m.report()
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep удаляет сессии, простаивающие дольше TTL, и возвращает их число
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	removed := 0
	for id, sess := range m.sessions {
		if sess.expired(now, m.opts.TTL) {
			delete(m.sessions, id)
			removed++
		}
	}
	m.mu.Unlock()

	m.report()
	return removed
}

// Run периодически чистит реестр до отмены контекста
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := m.Sweep(); removed > 0 {
				m.log.Info("session: expired %d sessions", removed)
			}
		case <-ctx.Done():
			return
		}
	}
}

// report обновляет gauges активных сессий и мастеров
func (m *Manager) report() {
	if m.metrics == nil {
		return
	}

	m.mu.RLock()
	sessions := len(m.sessions)
	wizards := 0
	for _, sess := range m.sessions {
		if sess.hasWizard() {
			wizards++
		}
	}
	m.mu.RUnlock()

	m.metrics.SetActiveSessions(sessions)
	m.metrics.SetActiveWizards(wizards)
}

// Report пересчитывает gauges после монтирования или закрытия мастера
func (m *Manager) Report() {
	m.report()
}
