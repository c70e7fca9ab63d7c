package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EventSlug string  `json:"eventSlug"`
	OptionID  int64   `json:"optionId"`
	Date      string  `json:"date"`      // YYYY-MM-DD
	StartTime string  `json:"startTime"` // HH:MM
	PersonID  *int64  `json:"personId,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID        int64     `json:"id"`
	EventSlug string    `json:"eventSlug"`
	OptionID  int64     `json:"optionId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    string    `json:"status"`
	PersonID  *int64    `json:"personId,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		EventSlug: r.EventSlug,
		OptionID:  r.OptionID,
		Date:      date,
		StartTime: startTime,
		PersonID:  r.PersonID,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:        resp.ID,
		EventSlug: resp.EventSlug,
		OptionID:  resp.OptionID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
		PersonID:  resp.PersonID,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt,
	}
}
