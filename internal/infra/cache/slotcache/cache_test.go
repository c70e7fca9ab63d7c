package slotcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type noopLogger struct{}

func (l *noopLogger) Debug(format string, v ...interface{}) {}
func (l *noopLogger) Info(format string, v ...interface{})  {}

func testSlots() []domain.Slot {
	return []domain.Slot{
		{StartTime: "09:00", EndTime: "10:00", DurationMinutes: 60, RemainingCapacity: 3, TotalCapacity: 5, Available: true},
		{StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60, RemainingCapacity: 0, TotalCapacity: 5, Available: false},
	}
}

func testDate() time.Time {
	return time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
}

func TestNewKey_Deterministic(t *testing.T) {
	owner := domain.OrganizationOwner(10)

	key1 := NewKey(owner, 100, 7, testDate())
	key2 := NewKey(owner, 100, 7, testDate())

	assert.Equal(t, key1, key2)
	assert.Equal(t, Key("organization:10:event=100:option=7:date=2026-09-07"), key1)
}

func TestNewKey_DistinguishesInputs(t *testing.T) {
	owner := domain.OrganizationOwner(10)
	base := NewKey(owner, 100, 7, testDate())

	assert.NotEqual(t, base, NewKey(domain.UserOwner(10), 100, 7, testDate()))
	assert.NotEqual(t, base, NewKey(owner, 101, 7, testDate()))
	assert.NotEqual(t, base, NewKey(owner, 100, 8, testDate()))
	assert.NotEqual(t, base, NewKey(owner, 100, 7, testDate().AddDate(0, 0, 1)))
}

func TestCache_StoreAndGet(t *testing.T) {
	cache, err := New(16, time.Minute, nil, &noopLogger{})
	require.NoError(t, err)

	key := NewKey(domain.OrganizationOwner(10), 100, 7, testDate())

	_, ok := cache.Get(key)
	assert.False(t, ok)

	cache.Store(key, testSlots())

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, testSlots(), got)
}

func TestCache_GetReturnsCopy(t *testing.T) {
	cache, err := New(16, time.Minute, nil, &noopLogger{})
	require.NoError(t, err)

	key := NewKey(domain.OrganizationOwner(10), 100, 7, testDate())
	cache.Store(key, testSlots())

	got, ok := cache.Get(key)
	require.True(t, ok)
	got[0].RemainingCapacity = 0

	again, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, 3, again[0].RemainingCapacity)
}

func TestCache_ExpiredEntryIsMiss(t *testing.T) {
	cache, err := New(16, time.Nanosecond, nil, &noopLogger{})
	require.NoError(t, err)

	key := NewKey(domain.OrganizationOwner(10), 100, 7, testDate())
	cache.Store(key, testSlots())

	time.Sleep(time.Millisecond)

	_, ok := cache.Get(key)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_InvalidateEventDate(t *testing.T) {
	cache, err := New(16, time.Minute, nil, &noopLogger{})
	require.NoError(t, err)

	owner := domain.OrganizationOwner(10)
	sameEventSameDate := NewKey(owner, 100, 7, testDate())
	sameEventOtherOption := NewKey(owner, 100, 8, testDate())
	sameEventOtherDate := NewKey(owner, 100, 7, testDate().AddDate(0, 0, 1))
	otherEvent := NewKey(owner, 200, 7, testDate())

	for _, key := range []Key{sameEventSameDate, sameEventOtherOption, sameEventOtherDate, otherEvent} {
		cache.Store(key, testSlots())
	}

	cache.InvalidateEventDate(100, testDate())

	// Обе опции события на дату удалены
	_, ok := cache.Get(sameEventSameDate)
	assert.False(t, ok)
	_, ok = cache.Get(sameEventOtherOption)
	assert.False(t, ok)

	// Другая дата и другое событие не затронуты
	_, ok = cache.Get(sameEventOtherDate)
	assert.True(t, ok)
	_, ok = cache.Get(otherEvent)
	assert.True(t, ok)
}

func TestCache_EvictsOldestWhenFull(t *testing.T) {
	cache, err := New(2, time.Minute, nil, &noopLogger{})
	require.NoError(t, err)

	owner := domain.OrganizationOwner(10)
	first := NewKey(owner, 100, 1, testDate())
	second := NewKey(owner, 100, 2, testDate())
	third := NewKey(owner, 100, 3, testDate())

	cache.Store(first, testSlots())
	cache.Store(second, testSlots())
	cache.Store(third, testSlots())

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get(first)
	assert.False(t, ok)
}

func TestCache_Purge(t *testing.T) {
	cache, err := New(16, time.Minute, nil, &noopLogger{})
	require.NoError(t, err)

	cache.Store(NewKey(domain.OrganizationOwner(10), 100, 7, testDate()), testSlots())
	require.Equal(t, 1, cache.Len())

	cache.Purge()

	assert.Equal(t, 0, cache.Len())
}
