package get_month_availability

import "time"

// Request модель запроса дат с доступностью за месяц
type Request struct {
	EventSlug string     // URL slug события
	OptionID  int64      // ID опции события
	Year      int        // Год, например 2026
	Month     time.Month // Месяц 1-12
}

// Response модель ответа с датами, на которые есть хотя бы один свободный слот
type Response struct {
	EventSlug string
	OptionID  int64
	Year      int
	Month     time.Month
	Dates     []string // Даты в формате YYYY-MM-DD по возрастанию
}
