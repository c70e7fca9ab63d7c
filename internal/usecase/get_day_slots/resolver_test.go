package get_day_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type noopLogger struct{}

func (l *noopLogger) Debug(format string, v ...interface{}) {}
func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func testOwner() domain.OwnerRef {
	return domain.OrganizationOwner(10)
}

func rule(id int64, eventID *int64, start, end types.TimeString) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:        id,
		Owner:     testOwner(),
		EventID:   eventID,
		Weekday:   time.Monday,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
}

func TestResolveWindows_GlobalRulesOnly(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // понедельник
	rules := []*domain.AvailabilityRule{
		rule(1, nil, "09:00", "13:00"),
		rule(2, nil, "15:00", "19:00"),
	}

	windows := ResolveWindows(rules, 100, date, &noopLogger{})

	assert.Equal(t, []domain.ResolvedWindow{
		{StartTime: "09:00", EndTime: "13:00"},
		{StartTime: "15:00", EndTime: "19:00"},
	}, windows)
}

func TestResolveWindows_EventScopedOverridesGlobal(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rules := []*domain.AvailabilityRule{
		rule(1, nil, "06:00", "21:00"),
		rule(2, ptr.Ptr(int64(100)), "10:00", "12:00"),
	}

	windows := ResolveWindows(rules, 100, date, &noopLogger{})

	// Глобальное правило полностью замещено
	assert.Equal(t, []domain.ResolvedWindow{
		{StartTime: "10:00", EndTime: "12:00"},
	}, windows)
}

func TestResolveWindows_OtherEventRulesIgnored(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rules := []*domain.AvailabilityRule{
		rule(1, nil, "09:00", "18:00"),
		rule(2, ptr.Ptr(int64(999)), "10:00", "12:00"), // правило другого события
	}

	windows := ResolveWindows(rules, 100, date, &noopLogger{})

	// Правило чужого события не замещает глобальные
	assert.Equal(t, []domain.ResolvedWindow{
		{StartTime: "09:00", EndTime: "18:00"},
	}, windows)
}

func TestResolveWindows_MalformedScopedRuleStillOverrides(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rules := []*domain.AvailabilityRule{
		rule(1, nil, "09:00", "18:00"),
		rule(2, ptr.Ptr(int64(100)), "14:00", "10:00"), // start >= end
	}

	windows := ResolveWindows(rules, 100, date, &noopLogger{})

	// Замещение решается по существованию event-scoped правил:
	// некорректное правило отбрасывается, fallback на глобальные не выполняется
	assert.Empty(t, windows)
}

func TestResolveWindows_MalformedRuleDropped(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rules := []*domain.AvailabilityRule{
		rule(1, nil, "09:00", "12:00"),
		rule(2, nil, "15:00", "15:00"), // нулевая длина
	}

	windows := ResolveWindows(rules, 100, date, &noopLogger{})

	assert.Equal(t, []domain.ResolvedWindow{
		{StartTime: "09:00", EndTime: "12:00"},
	}, windows)
}

func TestResolveWindows_InactiveRuleSkipped(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	inactive := rule(1, nil, "09:00", "12:00")
	inactive.IsActive = false

	windows := ResolveWindows([]*domain.AvailabilityRule{inactive}, 100, date, &noopLogger{})

	assert.Empty(t, windows)
}

func TestResolveWindows_ValidityBounds(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	expired := rule(1, nil, "09:00", "12:00")
	expired.ValidUntil = ptr.Ptr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	future := rule(2, nil, "13:00", "15:00")
	future.ValidFrom = ptr.Ptr(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	current := rule(3, nil, "16:00", "18:00")
	current.ValidFrom = ptr.Ptr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	current.ValidUntil = ptr.Ptr(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))

	windows := ResolveWindows([]*domain.AvailabilityRule{expired, future, current}, 100, date, &noopLogger{})

	assert.Equal(t, []domain.ResolvedWindow{
		{StartTime: "16:00", EndTime: "18:00"},
	}, windows)
}

func TestResolveWindows_MergesOverlappingAndTouching(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rules := []*domain.AvailabilityRule{
		rule(1, nil, "09:00", "12:00"),
		rule(2, nil, "11:00", "14:00"), // пересекается с первым
		rule(3, nil, "14:00", "16:00"), // соприкасается со вторым
		rule(4, nil, "18:00", "20:00"), // отдельное окно
	}

	windows := ResolveWindows(rules, 100, date, &noopLogger{})

	assert.Equal(t, []domain.ResolvedWindow{
		{StartTime: "09:00", EndTime: "16:00"},
		{StartTime: "18:00", EndTime: "20:00"},
	}, windows)
}

func TestResolveWindows_NoRules(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	windows := ResolveWindows(nil, 100, date, &noopLogger{})

	assert.Empty(t, windows)
}
