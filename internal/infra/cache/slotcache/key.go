package slotcache

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Key детерминированный ключ кэша доступности
// Формат: "<owner>:event=<id>:option=<id>:date=<YYYY-MM-DD>"
// Одинаковые входы движка всегда дают одинаковый ключ
type Key string

// NewKey строит ключ кэша из входов движка доступности
func NewKey(owner domain.OwnerRef, eventID, optionID int64, date time.Time) Key {
	return Key(fmt.Sprintf("%s:event=%d:option=%d:date=%s",
		owner, eventID, optionID, date.Format(domain.DateFormat)))
}

// eventDatePrefix часть ключа, общая для всех записей события на дату
// Используется при инвалидации после записи бронирования
func eventDateFragment(eventID int64, date time.Time) (string, string) {
	return fmt.Sprintf(":event=%d:", eventID), fmt.Sprintf(":date=%s", date.Format(domain.DateFormat))
}
