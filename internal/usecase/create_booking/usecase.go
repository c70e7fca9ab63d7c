package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	eventRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/event"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// UseCase use case создания бронирования
//
// Проверка вместимости и вставка выполняются в одной serializable
// транзакции с блокировкой активных бронирований (FOR UPDATE):
// при гонке за последнее место один из конкурентов получает
// ErrSlotCapacityExceeded
type UseCase struct {
	eventRepo    EventRepository
	ruleRepo     RuleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	cache        CacheInvalidator // nil, если кэш отключен
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	ruleRepo RuleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	cache CacheInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:    eventRepo,
		ruleRepo:     ruleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: event=%s, option=%d, date=%s, start=%s",
		req.EventSlug, req.OptionID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем событие
	event, err := uc.eventRepo.GetBySlug(ctx, req.EventSlug)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			uc.logger.Warn("CreateBooking: event slug=%s not found", req.EventSlug)
			return nil, fmt.Errorf("%w: slug=%s", ErrEventNotFound, req.EventSlug)
		}
		uc.logger.Error("CreateBooking: failed to get event slug=%s: %v", req.EventSlug, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	// 3. Получаем опцию и проверяем её принадлежность событию
	option, err := uc.eventRepo.GetOption(ctx, req.OptionID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrOptionNotFound) {
			uc.logger.Warn("CreateBooking: option id=%d not found", req.OptionID)
			return nil, fmt.Errorf("%w: id=%d", ErrOptionNotFound, req.OptionID)
		}
		uc.logger.Error("CreateBooking: failed to get option id=%d: %v", req.OptionID, err)
		return nil, fmt.Errorf("%w: failed to get option: %v", ErrInternal, err)
	}

	if option.EventID != event.ID {
		uc.logger.Warn("CreateBooking: option id=%d does not belong to event id=%d", option.ID, event.ID)
		return nil, fmt.Errorf("%w: id=%d", ErrOptionNotFound, req.OptionID)
	}

	// 4. Текущее время в таймзоне владельца
	now := uc.nowIn(event.Timezone)

	endTime, err := req.StartTime.AddMinutes(option.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: start=%s does not fit into the day: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: start=%s", ErrInvalidTimeSlot, req.StartTime)
	}

	// 5. Транзакция: проверка слота, пересчёт занятости под блокировкой, вставка
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rules, err := uc.ruleRepo.GetActiveForDate(txCtx, event.Owner, req.Date.Weekday(), req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
		}

		// Запрошенное время должно совпадать с началом одного из слотов,
		// которые движок доступности сгенерировал бы на эту дату
		windows := get_day_slots.ResolveWindows(rules, event.ID, req.Date, uc.logger)
		starts := get_day_slots.GenerateSlotStarts(windows, option.DurationMinutes, req.Date, now)
		if !containsStart(starts, req.StartTime) {
			uc.logger.Warn("CreateBooking: start=%s is not a bookable slot for option=%d on %s",
				req.StartTime, option.ID, req.Date.Format(domain.DateFormat))
			return fmt.Errorf("%w: start=%s", ErrInvalidTimeSlot, req.StartTime)
		}

		// Активные бронирования опции на дату, строки заблокированы до конца транзакции
		active, err := uc.bookingRepo.ListActiveByOptionAndDate(txCtx, option.ID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		occupied := 0
		for _, b := range active {
			if b.StartTime == req.StartTime && b.CountsAgainstCapacity() {
				occupied++
			}
		}
		if occupied >= option.Capacity {
			uc.logger.Warn("CreateBooking: slot %s on %s is full (%d/%d)",
				req.StartTime, req.Date.Format(domain.DateFormat), occupied, option.Capacity)
			return fmt.Errorf("%w: start=%s", ErrSlotCapacityExceeded, req.StartTime)
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			EventOptionID: option.ID,
			PersonID:      req.PersonID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			Status:        domain.StatusPending,
			Notes:         req.Notes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidTimeSlot) && !errors.Is(err, ErrSlotCapacityExceeded) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	// 6. Инвалидируем закэшированные слоты события на дату
	if uc.cache != nil {
		uc.cache.InvalidateEventDate(event.ID, req.Date)
	}

	uc.logger.Info("CreateBooking: created booking id=%d for event=%s, option=%d, date=%s, start=%s",
		created.ID, event.Slug, option.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		ID:        created.ID,
		EventSlug: event.Slug,
		OptionID:  option.ID,
		Date:      created.Date,
		StartTime: created.StartTime,
		EndTime:   endTime,
		Status:    string(created.Status),
		PersonID:  created.PersonID,
		Notes:     created.Notes,
		CreatedAt: created.CreatedAt,
	}, nil
}

// nowIn возвращает текущее время в таймзоне владельца
// Неизвестная таймзона события - fallback на UTC с предупреждением
func (uc *UseCase) nowIn(timezone string) time.Time {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		uc.logger.Warn("CreateBooking: unknown timezone %q, falling back to %s", timezone, domain.DefaultTimezone)
		loc = time.UTC
	}
	return uc.timeProvider.Now().In(loc)
}

func containsStart(starts []types.TimeString, start types.TimeString) bool {
	for _, s := range starts {
		if s == start {
			return true
		}
	}
	return false
}
