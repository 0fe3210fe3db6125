package domain

// SlotStatus availability status of a time slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotFull      SlotStatus = "full"
)

// TimeSlot represents a time slot of a service on a date
type TimeSlot struct {
	ID        int64      `json:"id"`
	ServiceID int64      `json:"serviceId"`
	Date      string     `json:"date"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Status    SlotStatus `json:"status"`
}

// IsAvailable returns true if the slot can still be booked
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == SlotAvailable
}
