package get_event_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
)

const (
	msgMissingEventSlug = "slug события обязателен"
	msgEventNotFound    = "событие не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events/{eventSlug}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventSlug := vars["eventSlug"]
	if eventSlug == "" {
		h.logger.Warn("GET /events/{slug}/schedule - Missing event slug")
		handlers.RespondBadRequest(w, msgMissingEventSlug)
		return
	}

	result, err := h.service.GetEventSchedule(r.Context(), eventSlug)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEventNotFound):
			h.logger.Warn("GET /events/{slug}/schedule - Event not found: event=%s", eventSlug)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /events/{slug}/schedule - Invalid input: event=%s, error=%v", eventSlug, err)
			handlers.RespondBadRequest(w, msgMissingEventSlug)

		default:
			h.logger.Error("GET /events/{slug}/schedule - Failed to get schedule: event=%s, error=%v", eventSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/{slug}/schedule - Schedule retrieved successfully: event=%s", eventSlug)
	handlers.RespondJSON(w, http.StatusOK, result)
}
