package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// ResolvedWindow is a contiguous time-of-day interval during which bookings
// may start, computed by merging an owner's availability rules for one date.
// Ephemeral: produced per query, never persisted.
type ResolvedWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Overlaps returns true if the two windows overlap or touch,
// i.e. they can be merged into a single window
func (w ResolvedWindow) Overlaps(other ResolvedWindow) bool {
	return !w.StartTime.IsAfter(other.EndTime) && !other.StartTime.IsAfter(w.EndTime)
}

// Merge returns the union of two overlapping or touching windows
func (w ResolvedWindow) Merge(other ResolvedWindow) ResolvedWindow {
	merged := w
	if other.StartTime.IsBefore(merged.StartTime) {
		merged.StartTime = other.StartTime
	}
	if other.EndTime.IsAfter(merged.EndTime) {
		merged.EndTime = other.EndTime
	}
	return merged
}
