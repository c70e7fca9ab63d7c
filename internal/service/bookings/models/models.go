package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ErrInvalidStatus возвращается при конвертации неизвестного статуса
var ErrInvalidStatus = errors.New("invalid booking status")

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToDomainBookingStatus конвертирует строковый статус в domain.BookingStatus
// Отмена проходит через отдельную операцию, поэтому cancelled здесь не принимается
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusNoShow:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                 int64      `json:"id"`
	EventOptionID      int64      `json:"eventOptionId"`
	PersonID           *int64     `json:"personId,omitempty"`
	Date               string     `json:"date"`
	StartTime          string     `json:"startTime"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		EventOptionID:      b.EventOptionID,
		PersonID:           b.PersonID,
		Date:               b.Date.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
	}
}
