package create_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные параметры запроса"
	msgEventNotFound      = "событие не найдено"
	msgOptionNotFound     = "опция события не найдена"
	msgInvalidTimeSlot    = "время не является началом доступного слота"
	msgSlotFull           = "все места слота заняты"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: event=%s, option_id=%d, error=%v",
				req.EventSlug, req.OptionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrEventNotFound):
			h.logger.Warn("POST /bookings - Event not found: event=%s", req.EventSlug)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, createBooking.ErrOptionNotFound):
			h.logger.Warn("POST /bookings - Option not found: event=%s, option_id=%d",
				req.EventSlug, req.OptionID)
			handlers.RespondNotFound(w, msgOptionNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: event=%s, option_id=%d, date=%s, start=%s",
				req.EventSlug, req.OptionID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotCapacityExceeded):
			h.logger.Warn("POST /bookings - Slot capacity exceeded: event=%s, option_id=%d, date=%s, start=%s",
				req.EventSlug, req.OptionID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: event=%s, option_id=%d, error=%v",
				req.EventSlug, req.OptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: id=%d, event=%s, option_id=%d, date=%s, start=%s",
		result.ID, req.EventSlug, req.OptionID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
