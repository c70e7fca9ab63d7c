package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetOption(ctx context.Context, optionID int64) (*domain.EventOption, error)
}

// CacheInvalidator интерфейс инвалидации кэша доступности
type CacheInvalidator interface {
	InvalidateEventDate(eventID int64, date time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
