package store

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

// AuthView состояние аутентификации для слоя представления
type AuthView struct {
	State[domain.User]
	IsAuthenticated bool        `json:"isAuthenticated"`
	Role            domain.Role `json:"role,omitempty"`
}

// AuthSlice токен, роль и текущий пользователь сессии.
// Реализует salonapi.Credentials: клиент API берет токен отсюда
// и сбрасывает его через Invalidate при ответе 401.
type AuthSlice struct {
	*Slice[domain.User]
	api AuthAPI

	credMu sync.RWMutex
	token  string
	role   domain.Role
}

func NewAuthSlice(api AuthAPI, log Logger) *AuthSlice {
	return &AuthSlice{Slice: newSlice[domain.User]("auth", log), api: api}
}

// Token bearer токен или пустая строка
func (s *AuthSlice) Token() string {
	s.credMu.RLock()
	defer s.credMu.RUnlock()
	return s.token
}

// Role роль вошедшего пользователя
func (s *AuthSlice) Role() domain.Role {
	s.credMu.RLock()
	defer s.credMu.RUnlock()
	return s.role
}

func (s *AuthSlice) IsAuthenticated() bool {
	return s.Token() != ""
}

// Invalidate сбрасывает локальную сессию. Вызывается клиентом API на 401,
// перенаправления не делает: его выполняет гейт маршрутов при следующем запросе.
func (s *AuthSlice) Invalidate() {
	s.credMu.Lock()
	s.token = ""
	s.role = ""
	s.credMu.Unlock()

	s.mu.Lock()
	s.state.Current = nil
	s.mu.Unlock()
	s.log.Info("auth: session invalidated")
}

// View снимок состояния вместе с флагами доступа
func (s *AuthSlice) View() AuthView {
	return AuthView{
		State:           s.Snapshot(),
		IsAuthenticated: s.IsAuthenticated(),
		Role:            s.Role(),
	}
}

// Login входит и запоминает токен. Роль берется из ответа,
// иначе из claim role токена, иначе считается клиентской.
func (s *AuthSlice) Login(ctx context.Context, req salonapi.LoginRequest) (*domain.User, error) {
	if err := validatePayload(req); err != nil {
		return nil, s.reject("login", err)
	}

	resp, err := thunk[domain.User, salonapi.LoginResult]{
		op:       "login",
		fallback: "Login failed",
		success:  "Logged in successfully",
		call: func(ctx context.Context) (*salonapi.Response[salonapi.LoginResult], error) {
			return s.api.Login(ctx, req)
		},
		reduce: func(st *State[domain.User], data salonapi.LoginResult) {
			if data.User != nil {
				user := *data.User
				st.Current = &user
			}
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}

	role := resolveRole(resp.Data)
	s.credMu.Lock()
	s.token = resp.Data.Token
	s.role = role
	s.credMu.Unlock()

	user := domain.User{Email: req.Email, Role: role}
	if resp.Data.User != nil {
		user = *resp.Data.User
		user.Role = role
	}
	return &user, nil
}

func resolveRole(res salonapi.LoginResult) domain.Role {
	if res.User != nil && res.User.Role.IsValid() {
		return res.User.Role
	}
	if role, err := salonapi.RoleFromToken(res.Token); err == nil {
		return role
	}
	return domain.RoleClient
}

// Logout выходит на backend'е. Локальное состояние очищается в любом случае.
func (s *AuthSlice) Logout(ctx context.Context) error {
	_, err := thunk[domain.User, struct{}]{
		op:       "logout",
		fallback: "Logout failed",
		success:  "Logged out",
		call: func(ctx context.Context) (*salonapi.Response[struct{}], error) {
			return s.api.Logout(ctx)
		},
	}.run(ctx, s.Slice)

	s.credMu.Lock()
	s.token = ""
	s.role = ""
	s.credMu.Unlock()

	s.mu.Lock()
	s.state.Current = nil
	s.mu.Unlock()
	return err
}

// FetchCurrentUser обновляет профиль текущего пользователя
func (s *AuthSlice) FetchCurrentUser(ctx context.Context) (*domain.User, error) {
	if !s.IsAuthenticated() {
		return nil, s.reject("me", ErrNotAuthenticated)
	}

	resp, err := thunk[domain.User, domain.User]{
		op:       "me",
		fallback: "Failed to fetch current user",
		call: func(ctx context.Context) (*salonapi.Response[domain.User], error) {
			return s.api.Me(ctx)
		},
		reduce: func(st *State[domain.User], data domain.User) {
			st.Current = &data
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}

	if resp.Data.Role.IsValid() {
		s.credMu.Lock()
		s.role = resp.Data.Role
		s.credMu.Unlock()
	}
	return &resp.Data, nil
}
