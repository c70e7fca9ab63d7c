package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// GenerateSlotStarts раскладывает окна доступности на времена начала слотов
//
// Шаг генерации равен длительности слота - слоты идут вплотную и не
// пересекаются. Кандидат попадает в результат, только если его конец
// не выходит за конец окна. Для сегодняшней даты отбрасываются слоты,
// чьё время начала уже прошло (now в таймзоне владельца)
//
// Окна на входе отсортированы и объединены (см. mergeWindows), поэтому
// результат упорядочен по возрастанию; дубликаты по времени начала
// отсеиваются на случай вырожденных окон
func GenerateSlotStarts(windows []domain.ResolvedWindow, durationMinutes int, date, now time.Time) []types.TimeString {
	starts := make([]types.TimeString, 0)

	// Прошедшие даты недоступны целиком
	if isDateInPast(date, now) {
		return starts
	}

	seen := make(map[types.TimeString]struct{})

	for _, window := range windows {
		current := window.StartTime

		for {
			slotEnd, err := current.AddMinutes(durationMinutes)
			if err != nil {
				// Слот пересёк полночь - окно исчерпано
				break
			}
			if slotEnd.IsAfter(window.EndTime) {
				break
			}

			if _, dup := seen[current]; !dup {
				seen[current] = struct{}{}
				starts = append(starts, current)
			}

			current = slotEnd
		}
	}

	// На сегодня прошедшие слоты не предлагаются
	if isSameDay(date, now) {
		nowTime := types.NewTimeString(now)

		upcoming := make([]types.TimeString, 0, len(starts))
		for _, start := range starts {
			if !start.IsBefore(nowTime) {
				upcoming = append(upcoming, start)
			}
		}
		return upcoming
	}

	return starts
}

// ApplyCapacity вычисляет оставшуюся вместимость каждого слота
//
// remaining = max(0, capacity - занято); полностью занятые слоты
// возвращаются с Available=false, а не выбрасываются - UI показывает
// их недоступными
func ApplyCapacity(starts []types.TimeString, durationMinutes, capacity int, counts map[types.TimeString]int) []domain.Slot {
	slots := make([]domain.Slot, 0, len(starts))

	for _, start := range starts {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			// Невозможно для сгенерированных слотов, но сломанный слот лучше пропустить
			continue
		}

		remaining := capacity - counts[start]
		if remaining < 0 {
			remaining = 0
		}

		slots = append(slots, domain.Slot{
			StartTime:         start,
			EndTime:           end,
			DurationMinutes:   durationMinutes,
			RemainingCapacity: remaining,
			TotalCapacity:     capacity,
			Available:         remaining > 0,
		})
	}

	return slots
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
