package catalog

import (
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
)

const (
	msgInvalidID          = "invalid id"
	msgInvalidCategoryID  = "invalid category id"
	msgInvalidRequestBody = "invalid request body"
	msgMissingStatus      = "isActive is required"
)

// Handler управление каталогом в админке: категории, услуги, кабинеты
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// ListCategories GET /api/v1/admin/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err := sess.Store.Categories.FetchAll(r.Context())
	if err != nil {
		h.logger.Warn("GET /admin/categories - Failed to fetch categories: %v", err)
	}
	handlers.RespondState(w, err, sess.Store.Categories.Snapshot())
}

// CreateCategory POST /api/v1/admin/categories
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	in, closeForm, err := parseCategory(r)
	if err != nil {
		h.logger.Warn("POST /admin/categories - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	defer closeForm()

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	created, err := sess.Store.Categories.Create(r.Context(), in)
	if err != nil {
		h.logger.Warn("POST /admin/categories - Failed to create category: name=%s, error=%v", in.Name, err)
		handlers.RespondState(w, err, sess.Store.Categories.Snapshot())
		return
	}

	h.logger.Info("POST /admin/categories - Category created: category_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, sess.Store.Categories.Snapshot())
}

// UpdateCategory PUT /api/v1/admin/categories/{categoryId}
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "categoryId")
	if err != nil {
		h.logger.Warn("PUT /admin/categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	in, closeForm, err := parseCategory(r)
	if err != nil {
		h.logger.Warn("PUT /admin/categories/{id} - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	defer closeForm()

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Categories.Update(r.Context(), id, in)
	if err != nil {
		h.logger.Warn("PUT /admin/categories/{id} - Failed to update category: category_id=%d, error=%v", id, err)
	} else {
		h.logger.Info("PUT /admin/categories/{id} - Category updated: category_id=%d", id)
	}
	handlers.RespondState(w, err, sess.Store.Categories.Snapshot())
}

// SetCategoryStatus PATCH /api/v1/admin/categories/{categoryId}/status
func (h *Handler) SetCategoryStatus(w http.ResponseWriter, r *http.Request) {
	id, active, ok := h.statusRequest(w, r, "categoryId")
	if !ok {
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err := sess.Store.Categories.SetStatus(r.Context(), id, active)
	if err != nil {
		h.logger.Warn("PATCH /admin/categories/{id}/status - Failed: category_id=%d, error=%v", id, err)
	}
	handlers.RespondState(w, err, sess.Store.Categories.Snapshot())
}

// ListServices GET /api/v1/admin/services?categoryId=
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	categoryID, err := handlers.QueryID(r, "categoryId")
	if err != nil {
		h.logger.Warn("GET /admin/services - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Services.FetchAll(r.Context(), categoryID)
	if err != nil {
		h.logger.Warn("GET /admin/services - Failed to fetch services: %v", err)
	}
	handlers.RespondState(w, err, sess.Store.Services.Snapshot())
}

// CreateService POST /api/v1/admin/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	in, closeForm, err := parseService(r)
	if err != nil {
		h.logger.Warn("POST /admin/services - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	defer closeForm()

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	created, err := sess.Store.Services.Create(r.Context(), in)
	if err != nil {
		h.logger.Warn("POST /admin/services - Failed to create service: name=%s, error=%v", in.Name, err)
		handlers.RespondState(w, err, sess.Store.Services.Snapshot())
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, sess.Store.Services.Snapshot())
}

// UpdateService PUT /api/v1/admin/services/{serviceId}
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "serviceId")
	if err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	in, closeForm, err := parseService(r)
	if err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	defer closeForm()

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err = sess.Store.Services.Update(r.Context(), id, in)
	if err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Failed to update service: service_id=%d, error=%v", id, err)
	}
	handlers.RespondState(w, err, sess.Store.Services.Snapshot())
}

// SetServiceStatus PATCH /api/v1/admin/services/{serviceId}/status
func (h *Handler) SetServiceStatus(w http.ResponseWriter, r *http.Request) {
	id, active, ok := h.statusRequest(w, r, "serviceId")
	if !ok {
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err := sess.Store.Services.SetStatus(r.Context(), id, active)
	if err != nil {
		h.logger.Warn("PATCH /admin/services/{id}/status - Failed: service_id=%d, error=%v", id, err)
	}
	handlers.RespondState(w, err, sess.Store.Services.Snapshot())
}

// ListRooms GET /api/v1/admin/rooms
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, err := sess.Store.Rooms.FetchAll(r.Context())
	if err != nil {
		h.logger.Warn("GET /admin/rooms - Failed to fetch rooms: %v", err)
	}
	handlers.RespondState(w, err, sess.Store.Rooms.Snapshot())
}

// CreateRoom POST /api/v1/admin/rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req RoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	created, err := sess.Store.Rooms.Create(r.Context(), req.ToAPIInput())
	if err != nil {
		h.logger.Warn("POST /admin/rooms - Failed to create room: name=%s, error=%v", req.Name, err)
		handlers.RespondState(w, err, sess.Store.Rooms.Snapshot())
		return
	}

	h.logger.Info("POST /admin/rooms - Room created: room_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, sess.Store.Rooms.Snapshot())
}

func (h *Handler) statusRequest(w http.ResponseWriter, r *http.Request, key string) (int64, bool, bool) {
	id, err := handlers.PathID(r, key)
	if err != nil {
		h.logger.Warn("PATCH %s - Invalid ID: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false, false
	}

	var req StatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH %s - Invalid request body: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return 0, false, false
	}
	if req.IsActive == nil {
		handlers.RespondBadRequest(w, msgMissingStatus)
		return 0, false, false
	}
	return id, *req.IsActive, true
}
