package domain

import "time"

// Event represents a bookable event owned by a user or an organization.
// Events are managed by admin tooling and read-only to this service.
type Event struct {
	ID          int64
	Slug        string // URL slug, unique across events
	Title       string
	Description *string
	Owner       OwnerRef
	Timezone    string // IANA name of the owner's configured timezone, e.g. "America/Caracas"
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EventOption is a bookable configuration of an event:
// a slot duration plus a concurrent-booking capacity.
type EventOption struct {
	ID              int64
	EventID         int64
	DurationID      int64
	DurationMinutes int // denormalized from the durations table
	Capacity        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SupportsParallelBookings returns true if more than one booking may share a slot
func (o *EventOption) SupportsParallelBookings() bool {
	return o.Capacity > 1
}
