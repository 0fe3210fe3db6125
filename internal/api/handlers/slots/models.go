package slots

import (
	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

// SlotRequest форма временного слота
type SlotRequest struct {
	ServiceID int64             `json:"serviceId"`
	Date      string            `json:"date"`
	StartTime string            `json:"startTime"`
	EndTime   string            `json:"endTime"`
	Status    domain.SlotStatus `json:"status,omitempty"`
}

func (r SlotRequest) ToAPIInput() salonapi.SlotInput {
	return salonapi.SlotInput{
		ServiceID: r.ServiceID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Status:    r.Status,
	}
}
