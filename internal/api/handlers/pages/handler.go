package pages

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/api/middleware"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

const (
	msgInvalidCategoryID = "invalid category id"
	msgInvalidServiceID  = "invalid service id"
	msgServiceNotFound   = "service not found"
)

// Handler публичные страницы: главная, каталог, карточка услуги
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Home GET /api/v1/pages/home
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, catErr := sess.Store.Categories.FetchAll(r.Context())
	_, svcErr := sess.Store.Services.FetchAll(r.Context(), 0)
	err := firstErr(catErr, svcErr)
	if err != nil {
		h.logger.Warn("GET /pages/home - Failed to load catalog: %v", err)
	}

	handlers.RespondState(w, err, HomePage{
		Categories: activeOnly(sess.Store.Categories.Snapshot(), categoryActive),
		Services:   activeOnly(sess.Store.Services.Snapshot(), serviceActive),
	})
}

// Services GET /api/v1/pages/services?categoryId=
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	categoryID, err := handlers.QueryID(r, "categoryId")
	if err != nil {
		h.logger.Warn("GET /pages/services - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	_, catErr := sess.Store.Categories.FetchAll(r.Context())
	_, svcErr := sess.Store.Services.FetchAll(r.Context(), categoryID)
	err = firstErr(catErr, svcErr)
	if err != nil {
		h.logger.Warn("GET /pages/services - Failed to load services: category_id=%d, error=%v", categoryID, err)
	}

	handlers.RespondState(w, err, ServicesPage{
		CategoryID: categoryID,
		Categories: activeOnly(sess.Store.Categories.Snapshot(), categoryActive),
		Services:   activeOnly(sess.Store.Services.Snapshot(), serviceActive),
	})
}

// Service GET /api/v1/pages/services/{serviceId}
func (h *Handler) Service(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathID(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /pages/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	sess, ok := middleware.RequireSession(w, r)
	if !ok {
		return
	}

	service, err := sess.Store.Services.FetchByID(r.Context(), serviceID)
	if err == nil && !service.IsActive {
		h.logger.Warn("GET /pages/services/{id} - Service is inactive: service_id=%d", serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}
	if err != nil && !errors.Is(err, salonapi.ErrNotFound) {
		h.logger.Error("GET /pages/services/{id} - Failed to load service: service_id=%d, error=%v", serviceID, err)
	}

	handlers.RespondState(w, err, ServicePage{Service: sess.Store.Services.Snapshot()})
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
