package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	GetOption(ctx context.Context, optionID int64) (*domain.EventOption, error)
}

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	GetActiveForDate(ctx context.Context, owner domain.OwnerRef, weekday time.Weekday, date time.Time) ([]*domain.AvailabilityRule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// ListActiveByOptionAndDate в транзакции блокирует строки (FOR UPDATE)
	ListActiveByOptionAndDate(ctx context.Context, optionID int64, date time.Time) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CacheInvalidator интерфейс инвалидации кэша доступности
// Любая запись бронирования устаревает закэшированные слоты события на дату
type CacheInvalidator interface {
	InvalidateEventDate(eventID int64, date time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
