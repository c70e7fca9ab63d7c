package get_month_availability

import (
	"context"

	getDaySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
)

// DaySlotsProvider интерфейс движка дневных слотов
// Реализуется usecase get_day_slots; месячная доступность - это
// дневной движок, прогнанный по каждому дню месяца
type DaySlotsProvider interface {
	Execute(ctx context.Context, req *getDaySlots.Request) (*getDaySlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
