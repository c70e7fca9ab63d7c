package get_month_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getDaySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
)

// UseCase use case получения дат месяца, на которые есть доступные слоты
//
// Для каждого дня месяца вызывается дневной движок; дата попадает в ответ,
// если хотя бы один слот свободен. Повторные запросы дешевы за счёт
// мемоизации дневного движка
type UseCase struct {
	daySlots DaySlotsProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(daySlots DaySlotsProvider, logger Logger) *UseCase {
	return &UseCase{
		daySlots: daySlots,
		logger:   logger,
	}
}

// Execute выполняет use case получения дат с доступностью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: event=%s, option=%d, month=%d-%02d",
		req.EventSlug, req.OptionID, req.Year, req.Month)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	dates := make([]string, 0)

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(req.Year, req.Month, day, 0, 0, 0, 0, time.UTC)

		dayResp, err := uc.daySlots.Execute(ctx, &getDaySlots.Request{
			EventSlug: req.EventSlug,
			OptionID:  req.OptionID,
			Date:      date,
		})
		if err != nil {
			uc.logger.Error("GetMonthAvailability: day engine failed for %s: %v",
				date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: day engine failed: %v", ErrInternal, err)
		}

		if hasAvailableSlot(dayResp) {
			dates = append(dates, date.Format(domain.DateFormat))
		}
	}

	uc.logger.Info("GetMonthAvailability: %d available dates for event=%s, option=%d, month=%d-%02d",
		len(dates), req.EventSlug, req.OptionID, req.Year, req.Month)

	return &Response{
		EventSlug: req.EventSlug,
		OptionID:  req.OptionID,
		Year:      req.Year,
		Month:     req.Month,
		Dates:     dates,
	}, nil
}

// hasAvailableSlot возвращает true, если в дне есть хотя бы один свободный слот
func hasAvailableSlot(resp *getDaySlots.Response) bool {
	for i := range resp.Slots {
		if resp.Slots[i].Available {
			return true
		}
	}
	return false
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EventSlug == "" {
		return fmt.Errorf("%w: eventSlug is required", ErrInvalidInput)
	}

	if req.OptionID <= 0 {
		return fmt.Errorf("%w: optionID must be positive", ErrInvalidInput)
	}

	if req.Year < 2000 || req.Year > 2200 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	return nil
}
