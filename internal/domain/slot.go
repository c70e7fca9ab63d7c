package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Slot represents one discrete bookable start time for a given date.
// Ephemeral: produced per query, never persisted. Fully booked slots are
// returned with Available=false rather than omitted, so the UI can render
// them greyed out.
type Slot struct {
	StartTime         types.TimeString
	EndTime           types.TimeString
	DurationMinutes   int
	RemainingCapacity int
	TotalCapacity     int
	Available         bool
}

// IsFull returns true if the slot has no remaining capacity
func (s *Slot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// IsPartiallyBooked returns true if some but not all capacity is taken
func (s *Slot) IsPartiallyBooked() bool {
	return s.RemainingCapacity > 0 && s.RemainingCapacity < s.TotalCapacity
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *Slot) OccupancyRate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	taken := s.TotalCapacity - s.RemainingCapacity
	return float64(taken) / float64(s.TotalCapacity) * 100
}
