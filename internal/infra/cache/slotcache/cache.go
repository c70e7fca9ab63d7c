package slotcache

import (
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const cacheName = "day_slots"

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
}

// MetricsObserver интерфейс для записи метрик попаданий/промахов кэша
type MetricsObserver interface {
	ObserveCacheHit(cache string)
	ObserveCacheMiss(cache string)
}

// entry запись кэша со временем сохранения
type entry struct {
	slots    []domain.Slot
	storedAt time.Time
}

// Cache in-process LRU кэш дневных слотов доступности
//
// Движок доступности - чистая функция своих входов и состояния хранилища,
// поэтому мемоизация по ключу из входов безопасна. Записи устаревают по
// maxAge (слоты на сегодня зависят от текущего времени) и инвалидируются
// write-путём бронирований
type Cache struct {
	mu      sync.RWMutex
	lru     *lru.Cache[Key, entry]
	maxAge  time.Duration
	metrics MetricsObserver
	logger  Logger
}

// New создает новый кэш слотов
// metrics может быть nil, если метрики отключены
func New(size int, maxAge time.Duration, metrics MetricsObserver, logger Logger) (*Cache, error) {
	cache, err := lru.New[Key, entry](size)
	if err != nil {
		return nil, err
	}

	return &Cache{
		lru:     cache,
		maxAge:  maxAge,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Get возвращает закэшированные слоты по ключу
// Устаревшие записи удаляются и считаются промахом
func (c *Cache) Get(key Key) ([]domain.Slot, bool) {
	c.mu.RLock()
	e, ok := c.lru.Get(key)
	c.mu.RUnlock()

	if ok && time.Since(e.storedAt) > c.maxAge {
		c.mu.Lock()
		c.lru.Remove(key)
		c.mu.Unlock()
		ok = false
	}

	if !ok {
		if c.metrics != nil {
			c.metrics.ObserveCacheMiss(cacheName)
		}
		c.logger.Debug("slotcache: miss key=%s", key)
		return nil, false
	}

	if c.metrics != nil {
		c.metrics.ObserveCacheHit(cacheName)
	}
	c.logger.Debug("slotcache: hit key=%s slots=%d", key, len(e.slots))

	// Копия, чтобы вызывающий код не мог изменить закэшированные слоты
	slots := make([]domain.Slot, len(e.slots))
	copy(slots, e.slots)

	return slots, true
}

// Store сохраняет слоты по ключу
func (c *Cache) Store(key Key, slots []domain.Slot) {
	stored := make([]domain.Slot, len(slots))
	copy(stored, slots)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(key, entry{slots: stored, storedAt: time.Now()})
}

// InvalidateEventDate удаляет все записи события на дату
// Вызывается write-путём после создания или отмены бронирования
func (c *Cache) InvalidateEventDate(eventID int64, date time.Time) {
	eventFragment, dateFragment := eventDateFragment(eventID, date)

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, key := range c.lru.Keys() {
		s := string(key)
		if strings.Contains(s, eventFragment) && strings.HasSuffix(s, dateFragment) {
			c.lru.Remove(key)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Debug("slotcache: invalidated %d entries for event=%d date=%s",
			removed, eventID, date.Format(domain.DateFormat))
	}
}

// Purge полностью очищает кэш
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Purge()
}

// Len возвращает текущее количество записей
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lru.Len()
}
