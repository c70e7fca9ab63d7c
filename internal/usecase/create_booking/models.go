package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	EventSlug string           // URL slug события
	OptionID  int64            // ID опции события
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота, например "10:00"
	PersonID  *int64           // ID клиента (опционально, ведётся внешним сервисом)
	Notes     *string          // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	EventSlug string           // Slug события
	OptionID  int64            // ID опции
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Status    string           // Статус бронирования
	PersonID  *int64           // ID клиента
	Notes     *string          // Заметки
	CreatedAt time.Time        // Время создания
}
