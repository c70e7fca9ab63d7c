package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailabilityRule is one recurring weekly availability window of an owner.
// A rule is either global (EventID nil, applies to all of the owner's events)
// or event-scoped (EventID set). Event-scoped rules override global rules
// for their weekday: they replace them entirely, they are not merged.
type AvailabilityRule struct {
	ID         int64
	Owner      OwnerRef
	EventID    *int64 // nil = global rule for all of the owner's events
	Weekday    time.Weekday
	StartTime  types.TimeString
	EndTime    types.TimeString
	ValidFrom  *time.Time // nil = unbounded in the past
	ValidUntil *time.Time // nil = unbounded in the future
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsGlobal returns true if the rule applies to all of the owner's events
func (r *AvailabilityRule) IsGlobal() bool {
	return r.EventID == nil
}

// IsScopedTo returns true if the rule is scoped to the given event
func (r *AvailabilityRule) IsScopedTo(eventID int64) bool {
	return r.EventID != nil && *r.EventID == eventID
}

// IsWellFormed returns true if the rule's window is a valid non-empty interval.
// Malformed rules are skipped during resolution, never fatal.
func (r *AvailabilityRule) IsWellFormed() bool {
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return false
	}
	return r.StartTime.IsBefore(r.EndTime)
}

// CoversDate returns true if the date falls inside the rule's validity window.
// A nil bound is treated as unbounded.
func (r *AvailabilityRule) CoversDate(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if r.ValidFrom != nil {
		from := time.Date(r.ValidFrom.Year(), r.ValidFrom.Month(), r.ValidFrom.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(from) {
			return false
		}
	}
	if r.ValidUntil != nil {
		until := time.Date(r.ValidUntil.Year(), r.ValidUntil.Month(), r.ValidUntil.Day(), 0, 0, 0, 0, time.UTC)
		if day.After(until) {
			return false
		}
	}
	return true
}
