package middleware

import (
	"net/http"
	"slices"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// LoginPath куда гейт отправляет неаутентифицированных
const LoginPath = "/login"

const msgForbidden = "access denied"

// RequireRole пропускает только вошедших пользователей с одной из ролей.
// Без входа 401 с redirect на страницу логина, с чужой ролью 403.
func RequireRole(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := GetSession(r.Context())
			if !ok || !sess.Store.Auth.IsAuthenticated() {
				handlers.RespondUnauthorized(w, LoginPath)
				return
			}

			if len(roles) > 0 && !slices.Contains(roles, sess.Store.Auth.Role()) {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
