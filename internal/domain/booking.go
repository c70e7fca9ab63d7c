package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a customer booking of one slot of an event option.
// This service creates and cancels bookings through the reservation flow;
// the availability engine itself only reads them.
type Booking struct {
	ID            int64
	EventOptionID int64
	PersonID      *int64 // customer reference, managed externally
	Date          time.Time
	StartTime     types.TimeString
	Status        BookingStatus
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
}

// CountsAgainstCapacity returns true if the booking occupies a capacity unit.
// Cancelled and no-show bookings free their slot.
func (b *Booking) CountsAgainstCapacity() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
