package get_day_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getDaySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
)

const (
	msgInvalidOptionID = "некорректный ID опции"
	msgMissingOptionID = "ID опции обязателен"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventSlug}/slots
// Query params: optionId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventSlug := vars["eventSlug"]

	// Извлекаем optionId из query параметров
	optionIDStr := r.URL.Query().Get("optionId")
	if optionIDStr == "" {
		h.logger.Warn("GET /events/{slug}/slots - Missing option ID")
		handlers.RespondBadRequest(w, msgMissingOptionID)
		return
	}

	optionID, err := strconv.ParseInt(optionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{slug}/slots - Invalid option ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOptionID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /events/{slug}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(eventSlug, optionID, dateStr)
	if err != nil {
		h.logger.Warn("GET /events/{slug}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /events/{slug}/slots - Invalid input: event=%s, option_id=%d, error=%v",
				eventSlug, optionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /events/{slug}/slots - Failed to get slots: event=%s, option_id=%d, error=%v",
				eventSlug, optionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /events/{slug}/slots - Slots retrieved successfully: event=%s, option_id=%d, date=%s, slots_count=%d",
		eventSlug, optionID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
