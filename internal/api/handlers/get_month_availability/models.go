package get_month_availability

import (
	"time"

	getMonthAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_month_availability"
)

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	EventSlug string   `json:"eventSlug"`
	OptionID  int64    `json:"optionId"`
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	Dates     []string `json:"dates"` // даты YYYY-MM-DD со свободными слотами
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *MonthAvailabilityResponse {
	return &MonthAvailabilityResponse{
		EventSlug: resp.EventSlug,
		OptionID:  resp.OptionID,
		Year:      resp.Year,
		Month:     int(resp.Month),
		Dates:     resp.Dates,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(eventSlug string, optionID int64, year, month int) *getMonthAvailability.Request {
	return &getMonthAvailability.Request{
		EventSlug: eventSlug,
		OptionID:  optionID,
		Year:      year,
		Month:     time.Month(month),
	}
}
