package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_month_availability"
)

const (
	msgInvalidOptionID = "некорректный ID опции"
	msgMissingOptionID = "ID опции обязателен"
	msgMissingYear     = "год обязателен"
	msgInvalidYear     = "некорректный год"
	msgMissingMonth    = "месяц обязателен"
	msgInvalidMonth    = "некорректный месяц, ожидается 1-12"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventSlug}/available-dates
// Query params: optionId (required), year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventSlug := vars["eventSlug"]

	// Извлекаем optionId из query параметров
	optionIDStr := r.URL.Query().Get("optionId")
	if optionIDStr == "" {
		h.logger.Warn("GET /events/{slug}/available-dates - Missing option ID")
		handlers.RespondBadRequest(w, msgMissingOptionID)
		return
	}

	optionID, err := strconv.ParseInt(optionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /events/{slug}/available-dates - Invalid option ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOptionID)
		return
	}

	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /events/{slug}/available-dates - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /events/{slug}/available-dates - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /events/{slug}/available-dates - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /events/{slug}/available-dates - Invalid month: %s", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	useCaseReq := ToUseCaseRequest(eventSlug, optionID, year, month)

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /events/{slug}/available-dates - Invalid input: event=%s, option_id=%d, error=%v",
				eventSlug, optionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /events/{slug}/available-dates - Failed to get availability: event=%s, option_id=%d, error=%v",
				eventSlug, optionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /events/{slug}/available-dates - Availability retrieved successfully: event=%s, option_id=%d, %d-%02d, dates_count=%d",
		eventSlug, optionID, year, month, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
