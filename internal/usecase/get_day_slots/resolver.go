package get_day_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ResolveWindows строит упорядоченный набор окон доступности на дату
// из правил владельца
//
// Приоритет: если на этот день недели существует хотя бы одно правило,
// привязанное к событию, используются ТОЛЬКО такие правила - глобальные
// правила владельца полностью замещаются, даже если event-scoped правила
// не дали ни одного корректного окна. Fallback на глобальные правила
// в этом случае не выполняется
//
// Некорректные правила (start >= end) пропускаются с предупреждением,
// пересекающиеся и соприкасающиеся окна объединяются
func ResolveWindows(rules []*domain.AvailabilityRule, eventID int64, date time.Time, log Logger) []domain.ResolvedWindow {
	scoped := make([]*domain.AvailabilityRule, 0)
	global := make([]*domain.AvailabilityRule, 0)

	for _, r := range rules {
		if !r.IsActive || !r.CoversDate(date) {
			continue
		}

		switch {
		case r.IsScopedTo(eventID):
			scoped = append(scoped, r)
		case r.IsGlobal():
			global = append(global, r)
		default:
			// Правило другого события владельца - не участвует
		}
	}

	// Решение о замещении принимается по факту существования event-scoped
	// правил, до отбрасывания некорректных
	applicable := global
	if len(scoped) > 0 {
		applicable = scoped
	}

	windows := make([]domain.ResolvedWindow, 0, len(applicable))
	for _, r := range applicable {
		if !r.IsWellFormed() {
			log.Warn("ResolveWindows: dropping malformed rule id=%d (%s >= %s)", r.ID, r.StartTime, r.EndTime)
			continue
		}
		windows = append(windows, domain.ResolvedWindow{
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	return mergeWindows(windows)
}

// mergeWindows сортирует окна по времени начала и объединяет
// пересекающиеся и соприкасающиеся, чтобы исключить дублирование слотов
func mergeWindows(windows []domain.ResolvedWindow) []domain.ResolvedWindow {
	if len(windows) <= 1 {
		return windows
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].StartTime == windows[j].StartTime {
			return windows[i].EndTime.IsBefore(windows[j].EndTime)
		}
		return windows[i].StartTime.IsBefore(windows[j].StartTime)
	})

	merged := make([]domain.ResolvedWindow, 0, len(windows))
	current := windows[0]

	for _, w := range windows[1:] {
		if current.Overlaps(w) {
			current = current.Merge(w)
			continue
		}
		merged = append(merged, current)
		current = w
	}
	merged = append(merged, current)

	return merged
}
