package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/slotcache"
	eventRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/event"
)

// UseCase use case получения слотов доступности на один день
//
// Движок доступности: правила владельца -> окна -> слоты -> занятость.
// Читает хранилище, ничего не пишет; результат - чистая функция входов
// и снимка хранилища, поэтому мемоизируется через кэш слотов
type UseCase struct {
	eventRepo    EventRepository
	ruleRepo     RuleRepository
	bookingRepo  BookingRepository
	cache        SlotCache // nil, если кэш отключен
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil - мемоизация тогда не выполняется
func NewUseCase(
	eventRepo EventRepository,
	ruleRepo RuleRepository,
	bookingRepo BookingRepository,
	cache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:    eventRepo,
		ruleRepo:     ruleRepo,
		bookingRepo:  bookingRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов на день
//
// Неизвестное событие или опция - пустой результат, не ошибка.
// Ошибки хранилища транзиентны и оборачиваются в ErrInternal
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: event=%s, option=%d, date=%s",
		req.EventSlug, req.OptionID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем событие
	event, err := uc.eventRepo.GetBySlug(ctx, req.EventSlug)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("GetDaySlots: event slug=%s not found", req.EventSlug)
			return emptyResponse(req, domain.DefaultTimezone), nil
		}
		uc.logger.Error("GetDaySlots: failed to get event slug=%s: %v", req.EventSlug, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	// 3. Получаем опцию и проверяем её принадлежность событию
	option, err := uc.eventRepo.GetOption(ctx, req.OptionID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrOptionNotFound) {
			uc.logger.Warn("GetDaySlots: option id=%d not found", req.OptionID)
			return emptyResponse(req, event.Timezone), nil
		}
		uc.logger.Error("GetDaySlots: failed to get option id=%d: %v", req.OptionID, err)
		return nil, fmt.Errorf("%w: failed to get option: %v", ErrInternal, err)
	}

	if option.EventID != event.ID {
		uc.logger.Warn("GetDaySlots: option id=%d does not belong to event id=%d", option.ID, event.ID)
		return emptyResponse(req, event.Timezone), nil
	}

	// 4. Текущее время в таймзоне владельца
	now := uc.nowIn(event.Timezone)

	// 5. Проверяем кэш
	key := slotcache.NewKey(event.Owner, event.ID, option.ID, req.Date)
	if uc.cache != nil {
		if slots, ok := uc.cache.Get(key); ok {
			return &Response{
				EventSlug: event.Slug,
				OptionID:  option.ID,
				Date:      req.Date,
				Timezone:  event.Timezone,
				Slots:     slots,
			}, nil
		}
	}

	// 6. Получаем правила владельца на день недели
	rules, err := uc.ruleRepo.GetActiveForDate(ctx, event.Owner, req.Date.Weekday(), req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get rules for owner=%s: %v", event.Owner, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 7. Резолвим окна доступности (event-scoped замещают глобальные)
	windows := ResolveWindows(rules, event.ID, req.Date, uc.logger)

	// 8. Генерируем времена начала слотов
	starts := GenerateSlotStarts(windows, option.DurationMinutes, req.Date, now)

	// 9. Занятость слотов бронированиями
	counts, err := uc.bookingRepo.CountActiveByOptionAndDate(ctx, option.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	// 10. Вычисляем оставшуюся вместимость каждого слота
	slots := ApplyCapacity(starts, option.DurationMinutes, option.Capacity, counts)

	if uc.cache != nil {
		uc.cache.Store(key, slots)
	}

	uc.logger.Info("GetDaySlots: generated %d slots for event=%s, option=%d, date=%s",
		len(slots), event.Slug, option.ID, req.Date.Format(domain.DateFormat))

	return &Response{
		EventSlug: event.Slug,
		OptionID:  option.ID,
		Date:      req.Date,
		Timezone:  event.Timezone,
		Slots:     slots,
	}, nil
}

// nowIn возвращает текущее время в таймзоне владельца
// Неизвестная таймзона события - fallback на UTC с предупреждением
func (uc *UseCase) nowIn(timezone string) time.Time {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		uc.logger.Warn("GetDaySlots: unknown timezone %q, falling back to %s", timezone, domain.DefaultTimezone)
		loc = time.UTC
	}
	return uc.timeProvider.Now().In(loc)
}
