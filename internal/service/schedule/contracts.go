package schedule

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	ListOptionsByEvent(ctx context.Context, eventID int64) ([]*domain.EventOption, error)
}

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	GetAllByOwner(ctx context.Context, owner domain.OwnerRef) ([]*domain.AvailabilityRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
