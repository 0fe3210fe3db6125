package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/wizard"
	"github.com/m04kA/SMC-SalonWeb/pkg/logger"
	"github.com/m04kA/SMC-SalonWeb/pkg/metrics"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestManager(t *testing.T) (*Manager, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)}
	m := NewManager(Options{
		APIBaseURL: "http://backend.test",
		APITimeout: time.Second,
		TTL:        30 * time.Minute,
	}, metrics.New("salon-web-test"), logger.NewNop())
	m.now = clock.now
	return m, clock
}

func TestManager_CreateAndGet(t *testing.T) {
	m, _ := newTestManager(t)

	sess := m.Create()
	require.NotEmpty(t, sess.ID)
	assert.NotNil(t, sess.Client)
	assert.NotNil(t, sess.Store)
	assert.Equal(t, 1, m.Count())

	got, ok := m.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = m.Get("unknown")
	assert.False(t, ok)
	_, ok = m.Get("")
	assert.False(t, ok)
}

func TestManager_Transient(t *testing.T) {
	m, _ := newTestManager(t)

	sess := m.Transient()
	assert.True(t, sess.Transient())
	assert.NotNil(t, sess.Client)
	assert.NotNil(t, sess.Store)
	assert.Zero(t, m.Count())

	registered := m.Create()
	assert.False(t, registered.Transient())
	assert.Equal(t, 1, m.Count())
}

func TestManager_Expiry(t *testing.T) {
	m, clock := newTestManager(t)

	idle := m.Create()
	active := m.Create()

	clock.t = clock.t.Add(20 * time.Minute)
	_, ok := m.Get(active.ID)
	require.True(t, ok)

	clock.t = clock.t.Add(15 * time.Minute)
	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Count())

	_, ok = m.Get(idle.ID)
	assert.False(t, ok)
	_, ok = m.Get(active.ID)
	assert.True(t, ok)

	clock.t = clock.t.Add(31 * time.Minute)
	_, ok = m.Get(active.ID)
	assert.False(t, ok, "expired session is dropped on access")
	assert.Equal(t, 0, m.Count())
}

func TestSession_Wizard(t *testing.T) {
	m, _ := newTestManager(t)
	sess := m.Create()
	assert.Nil(t, sess.Wizard())

	w := wizard.New(domain.Service{ID: 1, Price: 20}, nil)
	flow := wizard.NewFlow(w, sess.Store.Slots, sess.Store.Bookings, logger.NewNop())
	sess.MountWizard(flow)
	assert.Same(t, flow, sess.Wizard())
	m.Report()

	sess.DiscardWizard()
	assert.Nil(t, sess.Wizard())
}

func TestSession_ClientUsesAuthSlice(t *testing.T) {
	m, _ := newTestManager(t)
	sess := m.Create()

	assert.False(t, sess.Store.Auth.IsAuthenticated())
	sess.Store.Auth.Invalidate()
	assert.Empty(t, sess.Store.Auth.Token())
}

func TestManager_Run(t *testing.T) {
	m, _ := newTestManager(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancel")
	}
}
