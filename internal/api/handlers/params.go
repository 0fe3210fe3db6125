package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// PathID положительный int64 из переменной пути
func PathID(r *http.Request, key string) (int64, error) {
	raw := mux.Vars(r)[key]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return id, nil
}

// QueryID необязательный положительный int64 из query, 0 если не передан
func QueryID(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return id, nil
}

// QueryDate необязательная дата YYYY-MM-DD из query
func QueryDate(r *http.Request, key string) (string, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(domain.DateFormat, raw); err != nil {
		return "", fmt.Errorf("invalid %s: %q", key, raw)
	}
	return raw, nil
}
