package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение слотов на один день
type Request struct {
	EventSlug string    // URL slug события
	OptionID  int64     // ID опции события (длительность + вместимость)
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов на день
//
// Неизвестное событие или опция дают пустой список слотов, а не ошибку -
// для вызывающей стороны "нет такого события" и "нет доступности"
// неразличимы и обрабатываются одинаково
type Response struct {
	EventSlug string        // Slug события
	OptionID  int64         // ID опции
	Date      time.Time     // Дата запроса
	Timezone  string        // Таймзона владельца, в которой интерпретируются слоты
	Slots     []domain.Slot // Слоты по возрастанию времени начала; занятые помечены Available=false
}

// emptyResponse пустой ответ для неизвестного события/опции и дат без доступности
func emptyResponse(req *Request, timezone string) *Response {
	return &Response{
		EventSlug: req.EventSlug,
		OptionID:  req.OptionID,
		Date:      req.Date,
		Timezone:  timezone,
		Slots:     []domain.Slot{},
	}
}
