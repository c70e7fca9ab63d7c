package get_day_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/slotcache"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	GetOption(ctx context.Context, optionID int64) (*domain.EventOption, error)
}

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	// GetActiveForDate получает активные правила владельца на день недели,
	// действующие на указанную дату
	GetActiveForDate(ctx context.Context, owner domain.OwnerRef, weekday time.Weekday, date time.Time) ([]*domain.AvailabilityRule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountActiveByOptionAndDate возвращает занятые места по времени начала слота
	CountActiveByOptionAndDate(ctx context.Context, optionID int64, date time.Time) (map[types.TimeString]int, error)
}

// SlotCache интерфейс кэша дневных слотов (мемоизация движка)
type SlotCache interface {
	Get(key slotcache.Key) ([]domain.Slot, bool)
	Store(key slotcache.Key, slots []domain.Slot)
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
