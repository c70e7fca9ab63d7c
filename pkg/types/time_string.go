package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Формат времени суток "ЧЧ:ММ"
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")
)

// TimeString время суток без даты в формате "ЧЧ:ММ" (например, "10:00")
// Используется для времени начала слотов и границ окон доступности
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// parse парсит TimeString в time.Time (дата нулевая, важны только часы и минуты)
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время через minutes минут
// Возвращает ошибку, если исходное значение некорректно или результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}

	result := parsed.Add(time.Duration(minutes) * time.Minute)

	// Переход через полночь не поддерживается - окна доступности не пересекают границу суток
	if result.Day() != parsed.Day() {
		return "", fmt.Errorf("%w: %s + %d minutes crosses midnight", ErrInvalidTimeString, t, minutes)
	}

	return TimeString(result.Format(timeLayout)), nil
}

// MinutesUntil возвращает количество минут от t до other (может быть отрицательным)
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.parse()
	if err != nil {
		return 0, err
	}
	to, err := other.parse()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from) / time.Minute), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if _, err := t.parse(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает форматы "ЧЧ:ММ" и "ЧЧ:ММ:СС" (тип time в PostgreSQL), а также time.Time
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// PostgreSQL возвращает тип time как "10:00:00" - отбрасываем секунды
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
