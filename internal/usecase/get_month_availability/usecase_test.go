package get_month_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getDaySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

// fakeDayEngine прогоняет настоящий дневной движок по правилам в памяти,
// без хранилища
type fakeDayEngine struct {
	eventID int64
	rules   []*domain.AvailabilityRule
	counts  map[string]map[types.TimeString]int // date -> занятость
	now     time.Time
}

func (f *fakeDayEngine) Execute(ctx context.Context, req *getDaySlots.Request) (*getDaySlots.Response, error) {
	applicable := make([]*domain.AvailabilityRule, 0)
	for _, r := range f.rules {
		if r.Weekday == req.Date.Weekday() {
			applicable = append(applicable, r)
		}
	}

	windows := getDaySlots.ResolveWindows(applicable, f.eventID, req.Date, &noopLogger{})
	starts := getDaySlots.GenerateSlotStarts(windows, 60, req.Date, f.now)
	slots := getDaySlots.ApplyCapacity(starts, 60, 5, f.counts[req.Date.Format(domain.DateFormat)])

	return &getDaySlots.Response{
		EventSlug: req.EventSlug,
		OptionID:  req.OptionID,
		Date:      req.Date,
		Timezone:  "UTC",
		Slots:     slots,
	}, nil
}

func ownerRule(id int64, eventID *int64, weekday time.Weekday, start, end types.TimeString) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:        id,
		Owner:     domain.UserOwner(42),
		EventID:   eventID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}
}

// Событие с двумя event-scoped правилами (вт и чт) и без глобальных
// правил владельца: в ответе только вторники и четверги, среды пустые
func TestExecute_ScopedRulesOnlyTueThu(t *testing.T) {
	eventID := int64(55)
	rules := []*domain.AvailabilityRule{
		ownerRule(1, ptr.Ptr(eventID), time.Tuesday, "10:00", "14:00"),
		ownerRule(2, ptr.Ptr(eventID), time.Thursday, "10:00", "14:00"),
	}

	engine := &fakeDayEngine{
		eventID: eventID,
		rules:   rules,
		now:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	uc := NewUseCase(engine, &noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		EventSlug: "anagrama-reunion",
		OptionID:  7,
		Year:      2026,
		Month:     time.September,
	})

	require.NoError(t, err)

	// Сентябрь 2026: вторники 1, 8, 15, 22, 29; четверги 3, 10, 17, 24
	assert.Equal(t, []string{
		"2026-09-01", "2026-09-03", "2026-09-08", "2026-09-10",
		"2026-09-15", "2026-09-17", "2026-09-22", "2026-09-24", "2026-09-29",
	}, resp.Dates)
}

// Замещение действует по дням недели: event-scoped правила на вт и чт
// убирают глобальные окна только в эти дни, остальные будни остаются
// доступны по глобальным правилам
func TestExecute_ScopedRulesOverridePerWeekday(t *testing.T) {
	eventID := int64(55)
	rules := []*domain.AvailabilityRule{
		ownerRule(1, nil, time.Monday, "09:00", "18:00"),
		ownerRule(2, nil, time.Tuesday, "09:00", "18:00"),
		ownerRule(3, nil, time.Wednesday, "09:00", "18:00"),
		ownerRule(4, nil, time.Thursday, "09:00", "18:00"),
		ownerRule(5, nil, time.Friday, "09:00", "18:00"),
		ownerRule(6, ptr.Ptr(eventID), time.Tuesday, "10:00", "14:00"),
		ownerRule(7, ptr.Ptr(eventID), time.Thursday, "10:00", "14:00"),
	}

	engine := &fakeDayEngine{
		eventID: eventID,
		rules:   rules,
		now:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	uc := NewUseCase(engine, &noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		EventSlug: "anagrama-reunion",
		OptionID:  7,
		Year:      2026,
		Month:     time.September,
	})

	require.NoError(t, err)

	// Все будние дни сентября 2026: сокращённые окна вт/чт всё равно
	// дают слоты, пн/ср/пт доступны по глобальным правилам
	assert.Equal(t, []string{
		"2026-09-01", "2026-09-02", "2026-09-03", "2026-09-04",
		"2026-09-07", "2026-09-08", "2026-09-09", "2026-09-10", "2026-09-11",
		"2026-09-14", "2026-09-15", "2026-09-16", "2026-09-17", "2026-09-18",
		"2026-09-21", "2026-09-22", "2026-09-23", "2026-09-24", "2026-09-25",
		"2026-09-28", "2026-09-29", "2026-09-30",
	}, resp.Dates)
}

func TestExecute_FullyBookedDateExcluded(t *testing.T) {
	eventID := int64(55)
	rules := []*domain.AvailabilityRule{
		ownerRule(1, nil, time.Monday, "09:00", "11:00"), // два слота по 60 минут
	}

	engine := &fakeDayEngine{
		eventID: eventID,
		rules:   rules,
		counts: map[string]map[types.TimeString]int{
			"2026-09-07": {"09:00": 5, "10:00": 5}, // всё занято
			"2026-09-14": {"09:00": 5},             // один слот свободен
		},
		now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	uc := NewUseCase(engine, &noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		EventSlug: "pilates-caracas",
		OptionID:  7,
		Year:      2026,
		Month:     time.September,
	})

	require.NoError(t, err)

	// Понедельники сентября 2026: 7, 14, 21, 28; 7-е полностью занято
	assert.Equal(t, []string{"2026-09-14", "2026-09-21", "2026-09-28"}, resp.Dates)
}

func TestExecute_PastMonthEmpty(t *testing.T) {
	eventID := int64(55)
	rules := []*domain.AvailabilityRule{
		ownerRule(1, nil, time.Monday, "09:00", "18:00"),
	}

	engine := &fakeDayEngine{
		eventID: eventID,
		rules:   rules,
		now:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	uc := NewUseCase(engine, &noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		EventSlug: "pilates-caracas",
		OptionID:  7,
		Year:      2026,
		Month:     time.September,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeDayEngine{}, &noopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing slug", req: &Request{OptionID: 1, Year: 2026, Month: time.May}},
		{name: "bad option", req: &Request{EventSlug: "x", OptionID: 0, Year: 2026, Month: time.May}},
		{name: "year too small", req: &Request{EventSlug: "x", OptionID: 1, Year: 1999, Month: time.May}},
		{name: "month out of range", req: &Request{EventSlug: "x", OptionID: 1, Year: 2026, Month: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
