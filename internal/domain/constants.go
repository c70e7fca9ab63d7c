package domain

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinCapacity            = 1
	MaxCapacity            = 100
	MaxNotesLength         = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Fallback timezone when an event carries an unknown IANA name
const DefaultTimezone = "UTC"

// CapacityStatuses список статусов, занимающих место в слоте
// Используется при подсчёте занятости слотов
var CapacityStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// ReleasedStatuses список статусов, не занимающих место в слоте
var ReleasedStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
