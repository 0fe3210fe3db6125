package bookings

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/pkg/ptr"
)

// ConfirmRequest тело подтверждения PIN-кодом
type ConfirmRequest struct {
	PIN string `json:"pin"`
}

// CancelRequest тело отмены
type CancelRequest struct {
	Reason string `json:"reason"`
}

// ToFilter формирует фильтр списка из query параметров date, status, serviceId
func ToFilter(r *http.Request) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return filter, err
	}
	if date != "" {
		filter.Date = ptr.Ptr(date)
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		switch status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
			filter.Status = ptr.Ptr(status)
		default:
			return filter, fmt.Errorf("invalid status: %q", raw)
		}
	}

	serviceID, err := handlers.QueryID(r, "serviceId")
	if err != nil {
		return filter, err
	}
	if serviceID != 0 {
		filter.ServiceID = ptr.Ptr(serviceID)
	}
	return filter, nil
}
