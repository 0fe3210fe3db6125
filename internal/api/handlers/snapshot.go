package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonWeb/internal/store"
)

// StatusFor HTTP статус ответа на отклоненную операцию слайса:
// 4xx backend'а передается как есть, локальная валидация - 400, остальное 502
func StatusFor(err error) int {
	if errors.Is(err, store.ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, store.ErrNotAuthenticated) {
		return http.StatusUnauthorized
	}
	if status := salonapi.StatusCode(err); status >= 400 && status < 500 {
		return status
	}
	return http.StatusBadGateway
}

// RespondState отвечает снимком состояния. При ошибке операции
// снимок уходит с кодом из StatusFor, в нем уже лежит error слайса.
func RespondState(w http.ResponseWriter, err error, payload interface{}) {
	if err != nil {
		RespondJSON(w, StatusFor(err), payload)
		return
	}
	RespondJSON(w, http.StatusOK, payload)
}
