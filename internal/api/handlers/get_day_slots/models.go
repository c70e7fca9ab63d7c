package get_day_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getDaySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	EventSlug string     `json:"eventSlug"`
	OptionID  int64      `json:"optionId"`
	Date      string     `json:"date"`
	Timezone  string     `json:"timezone"`
	Slots     []SlotView `json:"slots"`
}

// SlotView модель временного слота
type SlotView struct {
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	DurationMinutes   int    `json:"durationMinutes"`
	RemainingCapacity int    `json:"remainingCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
	Available         bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotView, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotView{
			StartTime:         slot.StartTime.String(),
			EndTime:           slot.EndTime.String(),
			DurationMinutes:   slot.DurationMinutes,
			RemainingCapacity: slot.RemainingCapacity,
			TotalCapacity:     slot.TotalCapacity,
			Available:         slot.Available,
		}
	}

	return &DaySlotsResponse{
		EventSlug: resp.EventSlug,
		OptionID:  resp.OptionID,
		Date:      resp.Date.Format(domain.DateFormat),
		Timezone:  resp.Timezone,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(eventSlug string, optionID int64, dateStr string) (*getDaySlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDaySlots.Request{
		EventSlug: eventSlug,
		OptionID:  optionID,
		Date:      date,
	}, nil
}
