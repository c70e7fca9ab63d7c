package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	eventRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/event"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

type fakeEventRepo struct {
	event  *domain.Event
	option *domain.EventOption
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if f.event == nil || f.event.Slug != slug {
		return nil, eventRepo.ErrEventNotFound
	}
	return f.event, nil
}

func (f *fakeEventRepo) GetOption(ctx context.Context, optionID int64) (*domain.EventOption, error) {
	if f.option == nil || f.option.ID != optionID {
		return nil, eventRepo.ErrOptionNotFound
	}
	return f.option, nil
}

type fakeRuleRepo struct {
	rules []*domain.AvailabilityRule
}

func (f *fakeRuleRepo) GetActiveForDate(ctx context.Context, owner domain.OwnerRef, weekday time.Weekday, date time.Time) ([]*domain.AvailabilityRule, error) {
	matched := make([]*domain.AvailabilityRule, 0)
	for _, r := range f.rules {
		if r.Weekday == weekday {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) ListActiveByOptionAndDate(ctx context.Context, optionID int64, date time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeInvalidator struct {
	eventIDs []int64
	dates    []time.Time
}

func (f *fakeInvalidator) InvalidateEventDate(eventID int64, date time.Time) {
	f.eventIDs = append(f.eventIDs, eventID)
	f.dates = append(f.dates, date)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

func fixtureEvent() *domain.Event {
	return &domain.Event{
		ID:       100,
		Slug:     "pilates-caracas",
		Owner:    domain.OrganizationOwner(10),
		Timezone: "UTC",
	}
}

func fixtureOption() *domain.EventOption {
	return &domain.EventOption{
		ID:              7,
		EventID:         100,
		DurationMinutes: 60,
		Capacity:        2,
	}
}

func mondayRule() *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:        1,
		Owner:     domain.OrganizationOwner(10),
		Weekday:   time.Monday,
		StartTime: "09:00",
		EndTime:   "13:00",
		IsActive:  true,
	}
}

type testEnv struct {
	uc          *UseCase
	bookings    *fakeBookingRepo
	txManager   *fakeTxManager
	invalidator *fakeInvalidator
}

func newTestEnv(existing []*domain.Booking) *testEnv {
	bookings := &fakeBookingRepo{existing: existing}
	txManager := &fakeTxManager{}
	invalidator := &fakeInvalidator{}

	uc := NewUseCase(
		&fakeEventRepo{event: fixtureEvent(), option: fixtureOption()},
		&fakeRuleRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		bookings,
		txManager,
		invalidator,
		&noopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	return &testEnv{uc: uc, bookings: bookings, txManager: txManager, invalidator: invalidator}
}

func validRequest() *Request {
	return &Request{
		EventSlug: "pilates-caracas",
		OptionID:  7,
		Date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // понедельник
		StartTime: "10:00",
	}
}

func activeBooking(start types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		EventOptionID: 7,
		Date:          time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     start,
		Status:        status,
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	env := newTestEnv(nil)

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)

	assert.Equal(t, 1, env.txManager.calls)
	require.NotNil(t, env.bookings.created)
	assert.Equal(t, domain.StatusPending, env.bookings.created.Status)

	// Кэш слотов события на дату инвалидирован
	require.Len(t, env.invalidator.eventIDs, 1)
	assert.Equal(t, int64(100), env.invalidator.eventIDs[0])
}

func TestExecute_SlotCapacityExceeded(t *testing.T) {
	env := newTestEnv([]*domain.Booking{
		activeBooking("10:00", domain.StatusPending),
		activeBooking("10:00", domain.StatusConfirmed),
	})

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotCapacityExceeded)
	assert.Nil(t, env.bookings.created)
	assert.Empty(t, env.invalidator.eventIDs)
}

func TestExecute_CancelledBookingsDoNotCount(t *testing.T) {
	env := newTestEnv([]*domain.Booking{
		activeBooking("10:00", domain.StatusPending),
		activeBooking("10:00", domain.StatusCancelled),
	})

	resp, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_OtherSlotBookingsDoNotCount(t *testing.T) {
	env := newTestEnv([]*domain.Booking{
		activeBooking("09:00", domain.StatusConfirmed),
		activeBooking("09:00", domain.StatusConfirmed),
	})

	_, err := env.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	env := newTestEnv(nil)

	tests := []struct {
		name  string
		start types.TimeString
	}{
		{name: "not aligned to slot grid", start: "10:30"},
		{name: "outside window", start: "15:00"},
		{name: "last slot would overrun window", start: "12:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.start

			_, err := env.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	env := newTestEnv(nil)

	req := validRequest()
	req.Date = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // понедельник в прошлом

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_UnknownEvent(t *testing.T) {
	env := newTestEnv(nil)

	req := validRequest()
	req.EventSlug = "no-such-event"

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExecute_UnknownOption(t *testing.T) {
	env := newTestEnv(nil)

	req := validRequest()
	req.OptionID = 999

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOptionNotFound)
}

func TestExecute_OptionFromAnotherEvent(t *testing.T) {
	env := newTestEnv(nil)
	repo := env.uc.eventRepo.(*fakeEventRepo)
	repo.option.EventID = 999

	_, err := env.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrOptionNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	env := newTestEnv(nil)

	req := validRequest()
	req.EventSlug = ""

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
