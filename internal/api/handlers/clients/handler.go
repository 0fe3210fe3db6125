package clients

import (
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// List GET /api/v1/reception/clients?q=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err := sess.Store.Clients.FetchAll(r.Context())
	if err != nil {
		h.logger.Warn("GET /reception/clients - Failed to fetch clients: %v", err)
	}
	handlers.RespondState(w, err, filterByQuery(sess.Store.Clients.Snapshot(), r.URL.Query().Get("q")))
}
