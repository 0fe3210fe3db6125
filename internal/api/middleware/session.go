package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionStore реестр браузерных сессий
type SessionStore interface {
	Get(id string) (*session.Session, bool)
	Create() *session.Session
	Transient() *session.Session
}

// CookieOptions параметры cookie сессии
type CookieOptions struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Session находит сессию по cookie и кладет ее в контекст.
// Новая сессия регистрируется только на запросах, меняющих состояние;
// чтения без cookie обслуживаются временной сессией.
func Session(store SessionStore, opts CookieOptions) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(opts.Name); err == nil {
				id = cookie.Value
			}

			sess, ok := store.Get(id)
			switch {
			case ok:
			case isSafeMethod(r.Method):
				sess = store.Transient()
			default:
				sess = store.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     opts.Name,
					Value:    sess.ID,
					Path:     "/",
					MaxAge:   int(opts.TTL.Seconds()),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession достает сессию из контекста
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}

// RequireSession достает сессию в обработчике; без нее отвечает 500,
// так как Session middleware подключен ко всем маршрутам API
func RequireSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := GetSession(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return nil, false
	}
	return sess, true
}
